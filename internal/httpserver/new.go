package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"business-admin/internal/middleware"
	"business-admin/pkg/cache"
	"business-admin/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	postgresDB *sql.DB
	cache      cache.Cache

	// Access
	mw middleware.Middleware

	// Uploads
	upload UploadConfig
}

// UploadConfig places uploaded files on disk and under a public path.
type UploadConfig struct {
	Dir               string
	PublicPath        string
	MaxSizeBytes      int64
	AllowedExtensions []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	PostgresDB *sql.DB
	// Cache may be nil, collections are then always read from Postgres.
	Cache cache.Cache

	Middleware middleware.Middleware
	Upload     UploadConfig
}

// New creates a new HTTPServer instance and maps every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	c := cfg.Cache
	if c == nil {
		c = cache.NewNop()
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		postgresDB:      cfg.PostgresDB,
		cache:           c,
		mw:              cfg.Middleware,
		upload:          cfg.Upload,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.upload.Dir == "" || srv.upload.PublicPath == "" {
		return errors.New("upload dir and public path are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
