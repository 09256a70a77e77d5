package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"business-admin/config"
	"business-admin/internal/admin"
	"business-admin/pkg/apiclient"
	"business-admin/pkg/log"
)

const (
	FlagBaseURL  = "base-url"
	FlagAPIKey   = "api-key"
	FlagTenant   = "tenant"
	FlagUser     = "user"
	FlagYes      = "yes"
	FlagPerItem  = "per-item-reorder"
	FlagRoomType = "room-type"
	FlagActive   = "active"
	FlagLogLevel = "log-level"
	FlagOutput   = "output"
	FlagJSON     = "json"
)

// rootCmd is a base command.
var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "Manage categories, coupons, room types, rooms and listings of a business",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	pf := rootCmd.PersistentFlags()
	pf.String(FlagBaseURL, "", "API base URL (default from admin.base_url)")
	pf.String(FlagAPIKey, "", "API key (default from admin.api_key)")
	pf.String(FlagTenant, "", "business id (default from admin.tenant_id)")
	pf.String(FlagUser, "", "user id (default from admin.user_id)")
	pf.BoolP(FlagYes, "y", false, "answer yes to confirmation prompts")
	pf.Bool(FlagPerItem, false, "persist reorders with one update per item")
	pf.String(FlagLogLevel, "warn", "log level")

	for _, name := range admin.Names() {
		rootCmd.AddCommand(GetResourceCmd(name))
	}
	rootCmd.AddCommand(GetUploadCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// env is everything one command invocation needs.
type env struct {
	logger  log.Logger
	session *apiclient.Session
	ws      *admin.Workspace
}

func (e *env) close() { e.session.Close() }

func newEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	override := func(dst *string, flag string) {
		if v, _ := flags.GetString(flag); v != "" {
			*dst = v
		}
	}
	override(&cfg.Admin.BaseURL, FlagBaseURL)
	override(&cfg.Admin.APIKey, FlagAPIKey)
	override(&cfg.Admin.TenantID, FlagTenant)
	override(&cfg.Admin.UserID, FlagUser)
	level, _ := flags.GetString(FlagLogLevel)
	yes, _ := flags.GetBool(FlagYes)
	perItem, _ := flags.GetBool(FlagPerItem)

	logger := log.Init(log.ZapConfig{
		Level:       level,
		Mode:        log.ModeDevelopment,
		Encoding:    log.EncodingConsole,
		ServiceName: "business-admin-cli",
	})

	client := apiclient.New(apiclient.Config{
		BaseURL:    cfg.Admin.BaseURL,
		Timeout:    cfg.Admin.Timeout,
		RetryCount: cfg.Admin.RetryCount,
	}, logger)
	session, err := client.NewSession(cmd.Context(), apiclient.Credentials{
		TenantID: cfg.Admin.TenantID,
		UserID:   cfg.Admin.UserID,
		APIKey:   cfg.Admin.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set --%s or admin.tenant_id)", err, FlagTenant)
	}

	var opts []admin.Option
	if perItem {
		opts = append(opts, admin.WithPerItemReorder())
	}
	ws := admin.NewWorkspace(session, logger,
		admin.ConsoleNotifier{Out: cmd.ErrOrStderr()},
		admin.ConsoleConfirmer{In: cmd.InOrStdin(), Out: cmd.ErrOrStderr(), AssumeYes: yes},
		opts...,
	)
	return &env{logger: logger, session: session, ws: ws}, nil
}
