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

	"business-admin/internal/coupon"
	"business-admin/internal/middleware"
	"business-admin/pkg/log"
	"business-admin/pkg/spreadsheet"
)

type fakeUseCase struct {
	created coupon.CreateInput
	updated coupon.UpdateInput
	err     error
}

func (f *fakeUseCase) Create(ctx context.Context, in coupon.CreateInput) (coupon.Coupon, error) {
	f.created = in
	return coupon.Coupon{ID: "new", Code: in.Code}, f.err
}

func (f *fakeUseCase) List(ctx context.Context, in coupon.ListInput) (coupon.ListOutput, error) {
	return coupon.ListOutput{Coupons: []coupon.Coupon{{ID: "a", Code: "A"}}}, f.err
}

func (f *fakeUseCase) Detail(ctx context.Context, id string) (coupon.Coupon, error) {
	return coupon.Coupon{ID: id}, f.err
}

func (f *fakeUseCase) Update(ctx context.Context, in coupon.UpdateInput) (coupon.Coupon, error) {
	f.updated = in
	return coupon.Coupon{ID: in.ID}, f.err
}

func (f *fakeUseCase) Delete(ctx context.Context, id string) error { return f.err }

func (f *fakeUseCase) Reorder(ctx context.Context, in coupon.ReorderInput) error { return f.err }

func (f *fakeUseCase) Export(ctx context.Context) (coupon.ExportOutput, error) {
	return coupon.ExportOutput{FileName: "coupons-20260301.xlsx", Content: []byte("PK")}, f.err
}

func newTestRouter(uc coupon.UseCase) *gin.Engine {
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

func TestCreateBindsDates(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := call(r, http.MethodPost, "/api/v1/coupons",
		`{"code":"summer","discount_type":"percentage","discount_value":10,"valid_from":"2026-06-01T00:00:00Z"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "summer", uc.created.Code)
	require.NotNil(t, uc.created.ValidFrom)
	assert.Equal(t, 6, int(uc.created.ValidFrom.Month()))
	assert.Nil(t, uc.created.ValidTo)
}

func TestCreateRejectsUnknownDiscountType(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := call(r, http.MethodPost, "/api/v1/coupons", `{"code":"X","discount_type":"bogus","discount_value":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "DiscountType must be one of [percentage fixed]")
}

func TestExportIsNotAnID(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := call(r, http.MethodGet, "/api/v1/coupons/export", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, spreadsheet.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="coupons-20260301.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", w.Body.String())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{coupon.ErrDuplicateCode, http.StatusConflict, "Coupon code already exists"},
		{coupon.ErrPercentageTooHigh, http.StatusBadRequest, "at most 100"},
		{coupon.ErrInvalidValidity, http.StatusBadRequest, "valid_to must not be before valid_from"},
		{coupon.ErrCouponNotFound, http.StatusNotFound, "Coupon not found"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := newTestRouter(&fakeUseCase{err: tt.err})
			w := call(r, http.MethodPut, "/api/v1/coupons/a", `{"is_active":true}`)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.msg)
		})
	}
}
