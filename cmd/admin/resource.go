package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"business-admin/internal/admin"
)

// GetResourceCmd returns the command group for one collection.
func GetResourceCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Manage %s", name),
	}
	if name == "rooms" {
		cmd.PersistentFlags().String(FlagRoomType, "", "only rooms of this room type")
	}
	cmd.PersistentFlags().String(FlagActive, "", "filter by status: true or false")
	cmd.PersistentFlags().Bool(FlagJSON, false, "print items as JSON")

	cmd.AddCommand(
		action(name, "list", "List items in display order", cobra.NoArgs,
			func(ctx context.Context, res admin.Resource, args []string) error { return nil }),
		action(name, "create key=value...", "Create an item", cobra.MinimumNArgs(1),
			func(ctx context.Context, res admin.Resource, args []string) error {
				values, err := parseValues(args)
				if err != nil {
					return err
				}
				_, err = res.Create(ctx, values)
				return err
			}),
		action(name, "update <id> key=value...", "Update fields of an item", cobra.MinimumNArgs(2),
			func(ctx context.Context, res admin.Resource, args []string) error {
				values, err := parseValues(args[1:])
				if err != nil {
					return err
				}
				_, err = res.Update(ctx, args[0], values)
				return err
			}),
		action(name, "toggle <id>", "Flip the active flag", cobra.ExactArgs(1),
			func(ctx context.Context, res admin.Resource, args []string) error {
				_, err := res.Toggle(ctx, args[0])
				return err
			}),
		action(name, "delete <id>", "Delete an item after confirmation", cobra.ExactArgs(1),
			func(ctx context.Context, res admin.Resource, args []string) error {
				return res.Delete(ctx, args[0])
			}),
		action(name, "move <id> <index>", "Move an item to a zero-based position", cobra.ExactArgs(2),
			func(ctx context.Context, res admin.Resource, args []string) error {
				idx, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("index must be a number: %w", err)
				}
				return res.Move(ctx, args[0], idx)
			}),
		action(name, "up <id>", "Move an item one position up", cobra.ExactArgs(1),
			func(ctx context.Context, res admin.Resource, args []string) error {
				return res.MoveUp(ctx, args[0])
			}),
		action(name, "down <id>", "Move an item one position down", cobra.ExactArgs(1),
			func(ctx context.Context, res admin.Resource, args []string) error {
				return res.MoveDown(ctx, args[0])
			}),
		exportCmd(name),
	)
	return cmd
}

type runFunc func(ctx context.Context, res admin.Resource, args []string) error

// action loads the collection, runs fn and prints the resulting list.
func action(name, use, short string, args cobra.PositionalArgs, fn runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			res, err := e.ws.Resource(name, filters(cmd))
			if err != nil {
				return err
			}
			defer res.Close()

			ctx := cmd.Context()
			if err := res.Load(ctx); err != nil {
				return err
			}
			if err := fn(ctx, res, args); err != nil {
				return err
			}

			asJSON, _ := cmd.Flags().GetBool(FlagJSON)
			return printRows(cmd.OutOrStdout(), res.Rows(), asJSON)
		},
	}
}

func exportCmd(name string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the spreadsheet export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			res, err := e.ws.Resource(name, filters(cmd))
			if err != nil {
				return err
			}
			defer res.Close()

			path, _ := cmd.Flags().GetString(FlagOutput)
			if path == "" {
				path = name + ".xlsx"
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := res.Export(cmd.Context(), f); err != nil {
				f.Close()
				os.Remove(path)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringP(FlagOutput, "o", "", "output file (default <resource>.xlsx)")
	return cmd
}

func filters(cmd *cobra.Command) map[string]string {
	out := map[string]string{}
	if v, err := cmd.Flags().GetString(FlagRoomType); err == nil && v != "" {
		out["room_type_id"] = v
	}
	if v, _ := cmd.Flags().GetString(FlagActive); v != "" {
		out["active"] = v
	}
	return out
}

func parseValues(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, a := range args {
		k, v, ok := strings.Cut(a, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("expected key=value, got %q", a)
		}
		values[strings.TrimSpace(k)] = v
	}
	return values, nil
}

func printRows(w io.Writer, rows []admin.Row, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		out := make([]map[string]any, 0, len(rows))
		for _, r := range rows {
			m := map[string]any{"id": r.ID, "sort_order": r.SortOrder, "is_active": r.IsActive}
			for k, v := range r.Fields {
				m[k] = v
			}
			out = append(out, m)
		}
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tACTIVE\tNAME\tFIELDS")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\n", r.SortOrder, r.ID, r.IsActive, r.Label, summarize(r.Fields))
	}
	return tw.Flush()
}

func summarize(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v == nil || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}
