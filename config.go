package watson

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultHTTPTimeout controls the default HTTP client timeout if none is provided.
const DefaultHTTPTimeout = 30 * time.Second

// Config encapsulates the options required to instantiate a service client.
// Each service package fills URL with its own default endpoint when unset.
type Config struct {
	URL      string
	Username string
	Password string
	// HTTPClient overrides the transport used for requests. When nil a
	// net/http client with Timeout applied is used.
	HTTPClient HTTPClient
	// Logger receives debug-level request events. When nil logging is disabled.
	Logger  *zap.Logger
	Timeout time.Duration
}

// Validate performs basic sanity checks on the configuration and fills
// defaults for optional fields.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config cannot be nil")
	}

	serviceURL := strings.TrimSpace(c.URL)
	if serviceURL == "" {
		return errors.New("URL is required")
	}
	if _, err := url.ParseRequestURI(serviceURL); err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	c.URL = strings.TrimRight(serviceURL, "/")

	if strings.TrimSpace(c.Username) == "" {
		return errors.New("Username is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return errors.New("Password is required")
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultHTTPTimeout
	}

	return nil
}

// NewHTTPClient returns the configured transport, or a default net/http
// client honouring Timeout.
func (c Config) NewHTTPClient() HTTPClient {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.Timeout}
}

// NewLogger returns the configured logger, or a no-op logger.
func (c Config) NewLogger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
