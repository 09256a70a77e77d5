package http

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/internal/middleware"
	"business-admin/internal/upload"
	"business-admin/pkg/log"
)

type fakeUseCase struct {
	got  upload.UploadInput
	body string
	err  error
}

func (f *fakeUseCase) Upload(ctx context.Context, in upload.UploadInput) (upload.UploadOutput, error) {
	f.got = in
	b, _ := io.ReadAll(in.Content)
	f.body = string(b)
	return upload.UploadOutput{URL: "/uploads/f1.png", Name: "f1.png", Size: int64(len(b))}, f.err
}

func newTestRouter(uc upload.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{APIKeys: []string{"key"}})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func multipartReq(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer key")
	req.Header.Set("X-Business-ID", "biz-1")
	return req
}

func TestUpload(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, multipartReq(t, "file", "photo.png", "data"))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"url":"/uploads/f1.png","name":"f1.png","size":4}}`, w.Body.String())
	assert.Equal(t, "photo.png", uc.got.FileName)
	assert.Equal(t, "data", uc.body)
}

func TestUploadMissingFile(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})
	w := httptest.NewRecorder()

	r.ServeHTTP(w, multipartReq(t, "other", "photo.png", "data"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file is required")
}

func TestUploadTooLarge(t *testing.T) {
	r := newTestRouter(&fakeUseCase{err: upload.ErrFileTooLarge})
	w := httptest.NewRecorder()

	r.ServeHTTP(w, multipartReq(t, "file", "photo.png", "data"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
