package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "business-admin/pkg/errors"
	"business-admin/pkg/log"
	"business-admin/pkg/response"
	"business-admin/pkg/scope"
)

// Auth accepts requests carrying one of the configured API keys as a bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || !m.validKey(strings.TrimSpace(token)) {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}

func (m Middleware) validKey(token string) bool {
	if token == "" {
		return false
	}
	for _, k := range m.apiKeys {
		if subtle.ConstantTimeCompare(k, []byte(token)) == 1 {
			return true
		}
	}
	return false
}

// Tenant puts the caller's business id into the request scope.
func (m Middleware) Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(HeaderTenant))
		if tenantID == "" {
			response.Error(c, pkgErrors.ErrMissingTenant)
			return
		}
		ctx := scope.SetToContext(c.Request.Context(), scope.Scope{
			TenantID: tenantID,
			UserID:   strings.TrimSpace(c.GetHeader(HeaderUser)),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RateLimit applies one token bucket per tenant and client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		key := c.ClientIP()
		if sc, ok := scope.FromContext(c.Request.Context()); ok {
			key = sc.TenantID + "|" + key
		}
		if err := m.limiter.Allow(key); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// RequestID tags the request context and response with an id, reusing the caller's when sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
