package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"business-admin/config"
	_ "business-admin/docs" // Swagger docs
	"business-admin/internal/httpserver"
	"business-admin/internal/middleware"
	"business-admin/migrations"
	"business-admin/pkg/cache"
	"business-admin/pkg/log"
	"business-admin/pkg/postgres"
	"business-admin/pkg/ratelimit"
	"business-admin/pkg/redis"
)

// @title       Business Admin API
// @description Tenant scoped administration of categories, coupons, rooms and listings.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Business Admin API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server exited: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Postgres
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Postgres.AutoMigrate {
		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info(ctx, "Migrations applied")
	}

	// 4. Cache (optional)
	listCache := cache.NewNop()
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warnf(ctx, "Redis unavailable, list cache disabled: %v", err)
		} else {
			defer client.Close()
			listCache = cache.NewRedis(client, cfg.Cache.Prefix, cfg.Cache.TTL)
			logger.Infof(ctx, "List cache enabled at %s", cfg.Redis.Addr)
		}
	}

	// 5. Access
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(ratelimit.Config{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
			MaxKeys:        cfg.RateLimit.MaxKeys,
			KeyTTL:         cfg.RateLimit.KeyTTL,
		})
	}
	mw := middleware.New(logger, middleware.Config{
		APIKeys: cfg.Auth.APIKeys,
		Limiter: limiter,
	})

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		PostgresDB:      db,
		Cache:           listCache,
		Middleware:      mw,
		Upload: httpserver.UploadConfig{
			Dir:               cfg.Upload.Dir,
			PublicPath:        cfg.Upload.PublicPath,
			MaxSizeBytes:      cfg.Upload.MaxSizeBytes,
			AllowedExtensions: cfg.Upload.AllowedExtensions,
		},
	})
	if err != nil {
		return fmt.Errorf("create http server: %w", err)
	}

	// 7. Run
	return httpServer.Run(ctx)
}
