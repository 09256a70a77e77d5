package middleware

import (
	"business-admin/pkg/log"
	"business-admin/pkg/ratelimit"
)

const (
	HeaderTenant    = "X-Business-ID"
	HeaderUser      = "X-User-ID"
	HeaderRequestID = "X-Request-ID"
)

// Config is the dependency bag passed to New().
type Config struct {
	APIKeys []string
	// Limiter may be nil to disable rate limiting.
	Limiter *ratelimit.Limiter
}

type Middleware struct {
	l       log.Logger
	apiKeys [][]byte
	limiter *ratelimit.Limiter
}

func New(l log.Logger, cfg Config) Middleware {
	keys := make([][]byte, 0, len(cfg.APIKeys))
	for _, k := range cfg.APIKeys {
		if k != "" {
			keys = append(keys, []byte(k))
		}
	}
	return Middleware{
		l:       l,
		apiKeys: keys,
		limiter: cfg.Limiter,
	}
}
