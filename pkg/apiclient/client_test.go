package apiclient_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"business-admin/pkg/apiclient"
	"business-admin/pkg/collection"
	"business-admin/pkg/log"
)

// slowServer answers after the client has already timed out and counts requests per method.
type slowServer struct {
	mu    sync.Mutex
	calls map[string]int
	delay time.Duration
}

func (s *slowServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.calls[r.Method]++
	s.mu.Unlock()

	select {
	case <-time.After(s.delay):
	case <-r.Context().Done():
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"success":true,"data":{"id":"c1","code":"SAVE10"}}`)
}

func (s *slowServer) count(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method]
}

type recordingLogger struct {
	log.Logger
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warnf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}

func (r *recordingLogger) Errorf(_ context.Context, format string, args ...any) {
	r.record(format, args...)
}

func (r *recordingLogger) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

func newTimingOutSession(t *testing.T, l log.Logger) (*apiclient.Session, *slowServer) {
	t.Helper()
	stub := &slowServer{calls: map[string]int{}, delay: 150 * time.Millisecond}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Config{
		BaseURL:    srv.URL,
		Timeout:    50 * time.Millisecond,
		RetryCount: 2,
		RetryWait:  time.Millisecond,
	}, l)
	s, err := client.NewSession(context.Background(), apiclient.Credentials{TenantID: "biz-1", APIKey: "secret"})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, stub
}

func TestTimedOutWritesAreSentOnce(t *testing.T) {
	s, stub := newTimingOutSession(t, nil)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")
	ctx := context.Background()

	_, err := remote.Create(ctx, "biz-1", collection.Item[couponFields]{Fields: couponFields{Code: "SAVE10"}})
	require.Error(t, err)
	assert.Equal(t, 1, stub.count(http.MethodPost))

	require.Error(t, remote.Delete(ctx, "biz-1", "c1"))
	assert.Equal(t, 1, stub.count(http.MethodDelete))

	_, err = s.Upload(ctx, "logo.png", bytes.NewBufferString("png"))
	require.Error(t, err)
	assert.Equal(t, 2, stub.count(http.MethodPost))
}

func TestTimedOutReadsAreRetried(t *testing.T) {
	s, stub := newTimingOutSession(t, nil)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	_, err := remote.List(context.Background(), "biz-1")

	require.Error(t, err)
	assert.Equal(t, 3, stub.count(http.MethodGet))
}

func TestTransportMessagesGoThroughLogger(t *testing.T) {
	l := &recordingLogger{Logger: log.NewNop()}
	s, _ := newTimingOutSession(t, l)
	remote := apiclient.NewRemote[couponFields](s, "/api/v1/coupons")

	_, err := remote.List(context.Background(), "biz-1")
	require.Error(t, err)

	lines := l.all()
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Contains(t, line, "apiclient.resty:")
	}
}
