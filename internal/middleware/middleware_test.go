package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"business-admin/pkg/log"
	"business-admin/pkg/ratelimit"
	"business-admin/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		sc, _ := scope.FromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"tenant": sc.TenantID, "user": sc.UserID, "rid": log.RequestIDFromContext(c.Request.Context())})
	})
	r.GET("/x", handlers...)
	return r
}

func do(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), Config{APIKeys: []string{"good", ""}})
	r := newRouter(mw, mw.Auth())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid key", "Bearer good", http.StatusOK},
		{"wrong key", "Bearer bad", http.StatusUnauthorized},
		{"no scheme", "good", http.StatusUnauthorized},
		{"missing", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, map[string]string{"Authorization": tt.header})
			assert.Equal(t, tt.want, w.Code)
			if tt.want != http.StatusOK {
				assert.JSONEq(t, `{"success":false,"error":"unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestTenant(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newRouter(mw, mw.Tenant())

	w := do(r, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "business id is required")

	w = do(r, map[string]string{HeaderTenant: "biz-1", HeaderUser: "u-7"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tenant":"biz-1"`)
	assert.Contains(t, w.Body.String(), `"user":"u-7"`)
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{Limiter: ratelimit.New(ratelimit.Config{RequestsPerMin: 1, Burst: 2})})
	r := newRouter(mw, mw.Tenant(), mw.RateLimit())
	h := map[string]string{HeaderTenant: "biz-1"}

	assert.Equal(t, http.StatusOK, do(r, h).Code)
	assert.Equal(t, http.StatusOK, do(r, h).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, h).Code)
	assert.Equal(t, http.StatusOK, do(r, map[string]string{HeaderTenant: "biz-2"}).Code, "buckets are per tenant")
}

func TestRateLimitDisabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newRouter(mw, mw.RateLimit())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(r, nil).Code)
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newRouter(mw, mw.RequestID())

	w := do(r, map[string]string{HeaderRequestID: "abc"})
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
	assert.Contains(t, w.Body.String(), `"rid":"abc"`)

	w = do(r, nil)
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)
}
