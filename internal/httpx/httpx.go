package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Doer represents the subset of http.Client used across the SDK. It is
// intentionally small so callers can supply custom transports (for example to
// inject retries, or record fixtures in tests).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// DecodeJSON unmarshals the provided HTTP response body into the supplied
// target. It expects the caller to close resp.Body when finished.
func DecodeJSON(resp *http.Response, target any) error {
	if target == nil {
		return fmt.Errorf("decode target must be non-nil")
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// CloseQuietly drains and closes the response body so the underlying
// connection can be reused. Safe on a nil response.
func CloseQuietly(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
