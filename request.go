// Package watson provides shared plumbing for the Watson service clients:
// a request descriptor/builder, configuration, and the structured API error
// surface. Service-specific operations live in the per-service packages.
package watson

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/watson-community/watson-go-sdk/internal/apierrors"
	"github.com/watson-community/watson-go-sdk/internal/httpx"
	"github.com/watson-community/watson-go-sdk/version"
)

// HTTPClient is the contract the SDK requires from an HTTP transport.
type HTTPClient = httpx.Doer

// TransactionIDHeader carries the client-generated request correlation ID.
const TransactionIDHeader = "X-Global-Transaction-ID"

// QueryParam is a single name/value pair appended to the request URL. Pairs
// are encoded in the order they are supplied.
type QueryParam struct {
	Name  string
	Value string
}

// BasicAuth holds the credentials attached to outgoing requests.
type BasicAuth struct {
	Username string
	Password string
}

// Request describes a single HTTP call against a Watson service endpoint.
// A descriptor is built once, executed once, and discarded; it holds no
// mutable state after Build.
type Request struct {
	Method      string
	URL         string
	AcceptType  string
	ContentType string
	Query       []QueryParam
	Header      http.Header
	Body        []byte
	Auth        *BasicAuth
}

// Build assembles the descriptor into an *http.Request. The URL must carry a
// scheme and a host; a descriptor that lacks either is a configuration error
// and is reported explicitly. Caller-supplied headers win over the Accept and
// Content-Type defaults on key collision.
func (r Request) Build(ctx context.Context) (*http.Request, error) {
	if strings.TrimSpace(r.Method) == "" {
		return nil, errors.New("request method is required")
	}

	target, err := url.Parse(r.URL)
	if err != nil {
		return nil, fmt.Errorf("parse request URL: %w", err)
	}
	if target.Scheme == "" {
		return nil, fmt.Errorf("request URL %q missing scheme", r.URL)
	}
	if target.Host == "" {
		return nil, fmt.Errorf("request URL %q missing host", r.URL)
	}

	if len(r.Query) > 0 {
		var raw strings.Builder
		raw.WriteString(target.RawQuery)
		for _, param := range r.Query {
			if raw.Len() > 0 {
				raw.WriteByte('&')
			}
			raw.WriteString(url.QueryEscape(param.Name))
			raw.WriteByte('=')
			raw.WriteString(url.QueryEscape(param.Value))
		}
		target.RawQuery = raw.String()
	}

	var body io.Reader
	if len(r.Body) > 0 {
		body = bytes.NewReader(r.Body)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if r.AcceptType != "" {
		req.Header.Set("Accept", r.AcceptType)
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	for key, values := range r.Header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if req.Header.Get(TransactionIDHeader) == "" {
		req.Header.Set(TransactionIDHeader, uuid.NewString())
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", "watson-go-sdk/"+version.String())
	}

	if r.Auth != nil {
		req.SetBasicAuth(r.Auth.Username, r.Auth.Password)
	}

	return req, nil
}

// Do builds the request and executes it through the supplied client. Error
// statuses (>= 400) are decoded into an *APIError; the caller owns closing
// the response body on success.
func (r Request) Do(ctx context.Context, client HTTPClient) (*http.Response, error) {
	if client == nil {
		return nil, errors.New("http client is required")
	}

	req, err := r.Build(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.Method, req.URL.Path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr, decodeErr := apierrors.Decode(resp)
		httpx.CloseQuietly(resp)
		if decodeErr != nil {
			return nil, decodeErr
		}
		return nil, apiErr
	}

	return resp, nil
}
