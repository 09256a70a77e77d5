package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/internal/middleware"
	"business-admin/pkg/log"
)

const testKey = "secret"

func newTestServer(t *testing.T) (*HTTPServer, sqlmock.Sqlmock, string) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dir := t.TempDir()
	l := log.NewNop()
	srv, err := New(l, Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		PostgresDB:  db,
		Middleware:  middleware.New(l, middleware.Config{APIKeys: []string{testKey}}),
		Upload: UploadConfig{
			Dir:               dir,
			PublicPath:        "/uploads",
			MaxSizeBytes:      1 << 20,
			AllowedExtensions: []string{".png"},
		},
	})
	require.NoError(t, err)
	return srv, mock, dir
}

func serve(srv *HTTPServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.EqualError(t, err, "postgres db is required")

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode})
	assert.EqualError(t, err, "port is required")
}

func TestReadyCheck(t *testing.T) {
	srv, mock, _ := newTestServer(t)

	mock.ExpectPing()
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = serve(srv, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database unavailable")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCarriesRequestID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-42")
	w := serve(srv, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "req-42", w.Header().Get(middleware.HeaderRequestID))
}

func TestDomainRoutesRequireAuth(t *testing.T) {
	srv, _, _ := newTestServer(t)

	for _, path := range []string{
		"/api/v1/categories",
		"/api/v1/coupons",
		"/api/v1/room-types",
		"/api/v1/rooms",
		"/api/v1/listings",
	} {
		w := serve(srv, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCategoryListIsWired(t *testing.T) {
	srv, mock, _ := newTestServer(t)

	mock.ExpectQuery(`FROM categories WHERE business_id = \$1`).
		WithArgs("biz-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "business_id", "name", "description", "image_url",
			"sort_order", "is_active", "created_at", "updated_at",
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set("Authorization", "Bearer "+testKey)
	req.Header.Set(middleware.HeaderTenant, "biz-1")
	w := serve(srv, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUploadsAreServedStatically(t *testing.T) {
	srv, _, dir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png"), 0o644))

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/uploads/logo.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png", w.Body.String())
}
