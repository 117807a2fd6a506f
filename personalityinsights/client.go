// Package personalityinsights provides a typed client for the Watson
// Personality Insights v2 API.
package personalityinsights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	watson "github.com/watson-community/watson-go-sdk"
	"github.com/watson-community/watson-go-sdk/internal/httpx"
)

// DefaultServiceURL is used when Config.URL is unset.
const DefaultServiceURL = "https://gateway.watsonplatform.net/personality-insights/api"

// Client exposes the Personality Insights profile operations.
type Client struct {
	url    string
	auth   watson.BasicAuth
	http   watson.HTTPClient
	logger *zap.Logger
}

// NewClient constructs a personality insights client using the supplied configuration.
func NewClient(cfg watson.Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		cfg.URL = DefaultServiceURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		url:    cfg.URL,
		auth:   watson.BasicAuth{Username: cfg.Username, Password: cfg.Password},
		http:   cfg.NewHTTPClient(),
		logger: cfg.NewLogger(),
	}, nil
}

// ProfileFromText analyses plain text. The request body is the UTF-8 encoding
// of the input, untouched.
func (c *Client) ProfileFromText(ctx context.Context, text string, opts ...ProfileOption) (*Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}
	return c.profile(ctx, []byte(text), "text/plain", opts)
}

// ProfileFromHTML analyses HTML content. Markup is stripped server-side.
func (c *Client) ProfileFromHTML(ctx context.Context, html string, opts ...ProfileOption) (*Profile, error) {
	if strings.TrimSpace(html) == "" {
		return nil, errors.New("html content is required")
	}
	return c.profile(ctx, []byte(html), "text/html", opts)
}

// ProfileFromContentItems analyses a sequence of content items. Items are
// serialised in input order under the "contentItems" wrapper the service expects.
func (c *Client) ProfileFromContentItems(ctx context.Context, items []ContentItem, opts ...ProfileOption) (*Profile, error) {
	if len(items) == 0 {
		return nil, errors.New("at least one content item is required")
	}

	body, err := json.Marshal(contentItemsPayload{ContentItems: items})
	if err != nil {
		return nil, fmt.Errorf("marshal content items: %w", err)
	}
	return c.profile(ctx, body, "application/json", opts)
}

func (c *Client) profile(ctx context.Context, body []byte, contentType string, opts []ProfileOption) (*Profile, error) {
	settings := defaultProfileSettings()
	for _, opt := range opts {
		opt(&settings)
	}

	var query []watson.QueryParam
	if settings.includeRaw {
		query = append(query, watson.QueryParam{Name: "include_raw", Value: "true"})
	}

	header := http.Header{}
	if settings.acceptLanguage != "" {
		header.Set("Accept-Language", settings.acceptLanguage)
	}
	if settings.contentLanguage != "" {
		header.Set("Content-Language", settings.contentLanguage)
	}

	req := watson.Request{
		Method:      http.MethodPost,
		URL:         c.url + "/v2/profile",
		AcceptType:  "application/json",
		ContentType: contentType,
		Query:       query,
		Header:      header,
		Body:        body,
		Auth:        &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return nil, err
	}
	defer httpx.CloseQuietly(resp)

	var profile Profile
	if err := httpx.DecodeJSON(resp, &profile); err != nil {
		return nil, err
	}

	c.logger.Debug("profile analysed",
		zap.String("content_type", contentType),
		zap.Int("word_count", profile.WordCount))
	return &profile, nil
}
