// Package transport provides a resty-backed implementation of the
// watson.HTTPClient contract, for callers that want connection tuning and a
// retry budget without teaching the service clients about either.
package transport

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	watson "github.com/watson-community/watson-go-sdk"
)

const defaultRetryWaitTime = 500 * time.Millisecond

// Config controls the resty client backing the transport.
type Config struct {
	Timeout time.Duration
	// RetryCount enables automatic retries on transport failures when
	// greater than zero. The service clients themselves never retry.
	RetryCount    int
	RetryWaitTime time.Duration
}

// Client adapts a resty.Client to the watson.HTTPClient contract.
type Client struct {
	rc *resty.Client
}

var _ watson.HTTPClient = (*Client)(nil)

// New creates a transport with the specified configuration.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = watson.DefaultHTTPTimeout
	}

	rc := resty.New()
	rc.SetTimeout(timeout)

	if cfg.RetryCount > 0 {
		wait := cfg.RetryWaitTime
		if wait <= 0 {
			wait = defaultRetryWaitTime
		}
		rc.SetRetryCount(cfg.RetryCount)
		rc.SetRetryWaitTime(wait)
		// retry only transport-level failures; error statuses are the
		// caller's to interpret
		rc.AddRetryCondition(func(_ *resty.Response, err error) bool {
			return err != nil
		})
	}

	return &Client{rc: rc}
}

// Do executes the request through the underlying resty client. The response
// body is re-materialised so callers can read it as usual.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	r := c.rc.R().SetContext(req.Context())
	r.SetHeaderMultiValues(req.Header)

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = req.Body.Close()
		r.SetBody(body)
	}

	resp, err := r.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	raw := resp.RawResponse
	if raw == nil {
		return nil, errors.New("transport returned no response")
	}
	raw.Body = io.NopCloser(bytes.NewReader(resp.Body()))
	return raw, nil
}
