package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/internal/listing"
	"business-admin/internal/middleware"
	"business-admin/pkg/log"
	"business-admin/pkg/spreadsheet"
)

type fakeUseCase struct {
	listing.UseCase
	list    listing.ListInput
	exportQ listing.ListInput
	created listing.CreateInput
	err     error
}

func (f *fakeUseCase) Create(ctx context.Context, in listing.CreateInput) (listing.Listing, error) {
	f.created = in
	return listing.Listing{ID: "new", Title: in.Title}, f.err
}

func (f *fakeUseCase) List(ctx context.Context, in listing.ListInput) (listing.ListOutput, error) {
	f.list = in
	return listing.ListOutput{Listings: []listing.Listing{{ID: "a", Title: "Flat"}}}, f.err
}

func (f *fakeUseCase) Export(ctx context.Context, in listing.ListInput) (listing.ExportOutput, error) {
	f.exportQ = in
	return listing.ExportOutput{FileName: "listings.xlsx", Content: []byte("PK")}, f.err
}

func newTestRouter(uc listing.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{APIKeys: []string{"key"}})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func call(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer key")
	req.Header.Set("X-Business-ID", "biz-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListFilters(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := call(r, http.MethodGet, "/api/v1/listings?listing_type=rent&city=Hanoi", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, listing.ListInput{ListingType: "rent", City: "Hanoi"}, uc.list)

	w = call(r, http.MethodGet, "/api/v1/listings?listing_type=lease", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRequiresType(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := call(r, http.MethodPost, "/api/v1/listings", `{"title":"Flat","price":900}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ListingType is required")
}

func TestExportPassesFilters(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := call(r, http.MethodGet, "/api/v1/listings/export?listing_type=sale", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, spreadsheet.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "sale", uc.exportQ.ListingType)
}

func TestValidationErrorFromUseCase(t *testing.T) {
	r := newTestRouter(&fakeUseCase{err: listing.ErrInvalidPrice})

	w := call(r, http.MethodPost, "/api/v1/listings", `{"title":"Flat","price":900,"listing_type":"rent"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "price must be positive")
}
