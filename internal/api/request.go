package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bentonow/bento-go/internal/apierrors"
)

// PreparedRequest is a fully specified API call that can be sent any number
// of times. The body is encoded once, so every attempt sends identical bytes.
type PreparedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// NewRequest encodes body as JSON and returns a PreparedRequest.
// A nil body produces a request without payload.
func NewRequest(method, path string, query url.Values, body any) (*PreparedRequest, error) {
	req := &PreparedRequest{
		Method: method,
		Path:   path,
		Query:  query,
	}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &apierrors.SerializationError{Op: "encode", Err: err}
		}
		req.Body = data
	}
	return req, nil
}

// build creates a fresh *http.Request for one attempt.
func (r *PreparedRequest) build(ctx context.Context, rawURL string) (*http.Request, error) {
	var body io.Reader
	if r.Body != nil {
		body = bytes.NewReader(r.Body)
	}
	return http.NewRequestWithContext(ctx, r.Method, rawURL, body)
}

// BuildURL joins baseURL and path with a single slash and appends the
// site_uuid parameter, followed by any extra query parameters.
func BuildURL(baseURL, path, siteUUID string, query url.Values) string {
	u := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")

	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	u += sep + "site_uuid=" + url.QueryEscape(siteUUID)

	if len(query) > 0 {
		u += "&" + query.Encode()
	}
	return u
}
