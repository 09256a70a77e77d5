// Package apiclient talks to the business-admin REST API and adapts its collections
// to collection.Remote.
package apiclient

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"business-admin/pkg/log"
)

const (
	headerTenant = "X-Business-ID"
	headerUser   = "X-User-ID"
)

var (
	ErrSessionClosed = errors.New("apiclient: session closed")
	ErrNoTenant      = errors.New("apiclient: tenant id is required")
)

// Config is the transport configuration.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
}

// Client is a shared transport. Sessions carry the per-user identity.
type Client struct {
	http *resty.Client
	l    log.Logger
}

// New builds a Client.
func New(cfg Config, l log.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 500 * time.Millisecond
	}
	if l == nil {
		l = log.NewNop()
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(4*cfg.RetryWait).
		AddRetryCondition(retryIdempotent).
		SetLogger(restyLogger{l: l}).
		SetHeader("Accept", "application/json")

	return &Client{http: rc, l: l}
}

// retryIdempotent retries transport failures of reads and PUTs only. A POST or
// DELETE that timed out may already be committed, so repeating it is left to the user.
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || !isTransportErr(err) {
		return false
	}
	switch resp.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodPut:
		return true
	default:
		return false
	}
}

func isTransportErr(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	var netErr net.Error
	return errors.As(err, &urlErr) || errors.As(err, &netErr)
}

// Credentials identify the signed-in user and the business they manage.
type Credentials struct {
	TenantID string
	UserID   string
	APIKey   string
}

// Session is one authenticated session. Every request made through it carries
// its credentials, and Close cancels whatever is still in flight.
type Session struct {
	client *Client
	creds  Credentials

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewSession starts a session bound to ctx.
func (c *Client) NewSession(ctx context.Context, creds Credentials) (*Session, error) {
	if strings.TrimSpace(creds.TenantID) == "" {
		return nil, ErrNoTenant
	}
	sctx, cancel := context.WithCancel(ctx)
	return &Session{client: c, creds: creds, ctx: sctx, cancel: cancel}, nil
}

// TenantID returns the business this session manages.
func (s *Session) TenantID() string { return s.creds.TenantID }

// UserID returns the signed-in user.
func (s *Session) UserID() string { return s.creds.UserID }

// Context is cancelled when the session closes.
func (s *Session) Context() context.Context { return s.ctx }

// Close ends the session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
}

// bind derives a request context that also ends when the session does.
func (s *Session) bind(ctx context.Context) (context.Context, context.CancelFunc, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, nil, ErrSessionClosed
	}

	rctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	return rctx, func() {
		stop()
		cancel()
	}, nil
}

func (s *Session) request(ctx context.Context, tenantID string) *resty.Request {
	if tenantID == "" {
		tenantID = s.creds.TenantID
	}
	req := s.client.http.R().
		SetContext(ctx).
		SetHeader(headerTenant, tenantID)
	if s.creds.APIKey != "" {
		req.SetAuthToken(s.creds.APIKey)
	}
	if s.creds.UserID != "" {
		req.SetHeader(headerUser, s.creds.UserID)
	}
	return req
}
