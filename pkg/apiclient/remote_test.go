package apiclient_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/apiclient"
	"business-admin/pkg/collection"
	"business-admin/pkg/ordering"
)

type couponFields struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

type captured struct {
	Method string
	Path   string
	Query  string
	Tenant string
	Auth   string
	Body   map[string]any
}

type stubServer struct {
	mu       sync.Mutex
	requests []captured
	status   int
	reply    string
}

func (s *stubServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := captured{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Tenant: r.Header.Get("X-Business-ID"),
		Auth:   r.Header.Get("Authorization"),
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		_ = json.NewDecoder(r.Body).Decode(&c.Body)
	}
	s.mu.Lock()
	s.requests = append(s.requests, c)
	status, reply := s.status, s.reply
	s.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}

func (s *stubServer) last() captured {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[len(s.requests)-1]
}

func newSession(t *testing.T, stub http.Handler) *apiclient.Session {
	t.Helper()
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 2 * time.Second}, nil)
	s, err := client.NewSession(context.Background(), apiclient.Credentials{TenantID: "biz-1", UserID: "u-1", APIKey: "secret"})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestListDecodesFlatRecords(t *testing.T) {
	stub := &stubServer{reply: `{"success":true,"data":[
		{"id":"c1","business_id":"biz-1","code":"SAVE10","discount_type":"percentage","discount_value":10,"sort_order":0,"is_active":true},
		{"id":"c2","business_id":"biz-1","code":"FLAT5","discount_type":"fixed","discount_value":5,"sort_order":1,"is_active":false}
	]}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons", apiclient.WithFilter("active", "true"))

	items, err := remote.List(context.Background(), "biz-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, "SAVE10", items[0].Fields.Code)
	assert.True(t, items[0].IsActive)
	assert.Equal(t, 1, items[1].SortOrder)
	assert.False(t, items[1].IsActive)

	req := stub.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/v1/coupons", req.Path)
	assert.Equal(t, "active=true", req.Query)
	assert.Equal(t, "biz-1", req.Tenant)
	assert.Equal(t, "Bearer secret", req.Auth)
}

func TestCreateSendsFieldsAndReturnsServerRecord(t *testing.T) {
	stub := &stubServer{status: http.StatusCreated, reply: `{"success":true,"data":{"id":"srv-9","code":"SAVE10","discount_type":"percentage","discount_value":10,"sort_order":3,"is_active":true}}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	created, err := remote.Create(context.Background(), "biz-1", collection.Item[couponFields]{
		ID: "tmp-1", IsActive: true,
		Fields: couponFields{Code: "SAVE10", DiscountType: "percentage", DiscountValue: 10},
	})

	require.NoError(t, err)
	assert.Equal(t, "srv-9", created.ID)
	assert.Equal(t, 3, created.SortOrder)

	req := stub.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "SAVE10", req.Body["code"])
	assert.Equal(t, true, req.Body["is_active"])
	assert.NotContains(t, req.Body, "id")
}

func TestUpdateSendsOnlyPatch(t *testing.T) {
	stub := &stubServer{reply: `{"success":true,"data":{"id":"c1","code":"SAVE10","sort_order":2,"is_active":false}}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	order, active := 2, false
	updated, err := remote.Update(context.Background(), "biz-1", "c1", collection.Patch{SortOrder: &order, IsActive: &active})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	req := stub.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/v1/coupons/c1", req.Path)
	assert.Equal(t, map[string]any{"sort_order": 2.0, "is_active": false}, req.Body)
}

func TestRejectionIsSurfacedVerbatim(t *testing.T) {
	stub := &stubServer{status: http.StatusBadRequest, reply: `{"success":false,"error":"Coupon code already exists","details":["code SAVE10 is taken"]}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	_, err := remote.Create(context.Background(), "biz-1", collection.Item[couponFields]{Fields: couponFields{Code: "SAVE10"}})

	var rej collection.Rejection
	require.True(t, errors.As(err, &rej))
	assert.Equal(t, "Coupon code already exists", rej.RejectionMessage())
	assert.Equal(t, []string{"code SAVE10 is taken"}, rej.RejectionDetails())
	assert.True(t, apiclient.IsStatus(err, http.StatusBadRequest))
}

func TestUpdateNotFoundMapsToCollectionError(t *testing.T) {
	stub := &stubServer{status: http.StatusNotFound, reply: `{"success":false,"error":"Coupon not found"}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	_, err := remote.Update(context.Background(), "biz-1", "gone", collection.Patch{})

	assert.ErrorIs(t, err, collection.ErrNotFound)
	var rej collection.Rejection
	assert.True(t, errors.As(err, &rej))
}

func TestNonEnvelopeResponse(t *testing.T) {
	stub := &stubServer{status: http.StatusBadGateway, reply: `<html>bad gateway</html>`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	_, err := remote.List(context.Background(), "biz-1")

	assert.ErrorIs(t, err, apiclient.ErrUnexpectedResponse)
	var rej collection.Rejection
	assert.False(t, errors.As(err, &rej))
}

func TestReorderSendsPositions(t *testing.T) {
	stub := &stubServer{reply: `{"success":true}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	err := remote.Reorder(context.Background(), "biz-1", ordering.Positions([]string{"c", "a", "b"}))

	require.NoError(t, err)
	req := stub.last()
	assert.Equal(t, "/api/v1/coupons/reorder", req.Path)
	items := req.Body["items"].([]any)
	require.Len(t, items, 3)
	assert.Equal(t, map[string]any{"id": "c", "sort_order": 0.0}, items[0])
}

func TestClosedSessionRefusesCalls(t *testing.T) {
	stub := &stubServer{reply: `{"success":true,"data":[]}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	s.Close()
	_, err := remote.List(context.Background(), "biz-1")

	assert.ErrorIs(t, err, apiclient.ErrSessionClosed)
	assert.Empty(t, stub.requests)
	assert.Error(t, s.Context().Err())
}

func TestCloseCancelsInFlight(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)
	s := newSession(t, handler)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	errCh := make(chan error, 1)
	go func() {
		_, err := remote.List(context.Background(), "biz-1")
		errCh <- err
	}()
	<-started
	s.Close()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("request was not cancelled")
	}
}

func TestUploadReturnsURL(t *testing.T) {
	var gotName, gotContent string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err == nil {
			gotName = hdr.Filename
			b, _ := io.ReadAll(f)
			gotContent = string(b)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"data":{"url":"/uploads/abc.png"}}`)
	})
	s := newSession(t, handler)

	url, err := s.Upload(context.Background(), "logo.png", bytes.NewBufferString("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)
	assert.Equal(t, "logo.png", gotName)
	assert.Equal(t, "png-bytes", gotContent)
}

func TestExportWritesBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/coupons/export", r.URL.Path)
		_, _ = io.WriteString(w, "xlsx-bytes")
	})
	s := newSession(t, handler)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	var buf bytes.Buffer
	require.NoError(t, remote.Export(context.Background(), "biz-1", &buf))
	assert.Equal(t, "xlsx-bytes", buf.String())
}

func TestNewSessionRequiresTenant(t *testing.T) {
	client := apiclient.New(apiclient.Config{BaseURL: "http://localhost"}, nil)
	_, err := client.NewSession(context.Background(), apiclient.Credentials{})
	assert.ErrorIs(t, err, apiclient.ErrNoTenant)
}

func TestDrivesCollection(t *testing.T) {
	stub := &stubServer{reply: `{"success":true,"data":[
		{"id":"a","code":"A","sort_order":0,"is_active":true},
		{"id":"b","code":"B","sort_order":1,"is_active":true}
	]}`}
	s := newSession(t, stub)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")
	coll := collection.New[couponFields](remote, s.TenantID(), collection.WithContext(s.Context()))
	defer coll.Close()

	require.NoError(t, coll.Load(context.Background()))
	stub.mu.Lock()
	stub.reply = `{"success":true}`
	stub.mu.Unlock()
	require.NoError(t, coll.MoveDown(context.Background(), "a"))

	req := stub.last()
	assert.Equal(t, "/api/v1/coupons/reorder", req.Path)
	assert.Equal(t, []string{"b", "a"}, []string{coll.Items()[0].ID, coll.Items()[1].ID})
}
