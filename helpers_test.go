package bento

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeAPI answers every request with a fixed status and body and records
// what it received.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	siteUUID string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, respBody := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, respBody)
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "no request recorded")
	return f.requests[len(f.requests)-1]
}

func fastRetry() *RetryConfig {
	cfg := DefaultRetryConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.MaxDelay = 5 * time.Millisecond
	return cfg
}

// newFakeClient starts a fake API and returns a client pointed at it.
func newFakeClient(t *testing.T, status int, body string) (*Client, *fakeAPI) {
	t.Helper()

	f := &fakeAPI{status: status, body: body, siteUUID: uuid.NewString()}
	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	cfg, err := NewConfigBuilder().
		PublishableKey("pub").
		SecretKey("sec").
		SiteUUID(f.siteUUID).
		BaseURL(server.URL).
		Build()
	require.NoError(t, err)

	client, err := New(cfg, WithRetryConfig(fastRetry()))
	require.NoError(t, err)
	return client, f
}
