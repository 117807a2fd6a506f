// Package naturallanguageclassifier provides a typed client for the Watson
// Natural Language Classifier v1 API.
package naturallanguageclassifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	watson "github.com/watson-community/watson-go-sdk"
	"github.com/watson-community/watson-go-sdk/internal/httpx"
)

// DefaultServiceURL is used when Config.URL is unset.
const DefaultServiceURL = "https://gateway.watsonplatform.net/natural-language-classifier/api"

// Client exposes the Natural Language Classifier operations.
type Client struct {
	url    string
	auth   watson.BasicAuth
	http   watson.HTTPClient
	logger *zap.Logger
}

// NewClient constructs a classifier client using the supplied configuration.
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

// Create trains a new classifier from the supplied metadata and CSV training
// data and returns the created classifier record.
func (c *Client) Create(ctx context.Context, metadata TrainingMetadata, trainingData io.Reader) (*Classifier, error) {
	if err := metadata.validate(); err != nil {
		return nil, err
	}
	if trainingData == nil {
		return nil, errors.New("training data is required")
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("marshal training metadata: %w", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	metadataPart, err := form.CreateFormField("training_metadata")
	if err != nil {
		return nil, fmt.Errorf("create metadata part: %w", err)
	}
	if _, err := metadataPart.Write(metadataJSON); err != nil {
		return nil, fmt.Errorf("write metadata part: %w", err)
	}

	dataPart, err := form.CreateFormFile("training_data", "training.csv")
	if err != nil {
		return nil, fmt.Errorf("create training data part: %w", err)
	}
	if _, err := io.Copy(dataPart, trainingData); err != nil {
		return nil, fmt.Errorf("read training data: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("finalize form: %w", err)
	}

	req := watson.Request{
		Method:      http.MethodPost,
		URL:         c.url + "/v1/classifiers",
		AcceptType:  "application/json",
		ContentType: form.FormDataContentType(),
		Body:        body.Bytes(),
		Auth:        &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return nil, err
	}
	defer httpx.CloseQuietly(resp)

	c.logger.Debug("classifier created", zap.String("name", metadata.Name))

	var classifier Classifier
	if err := httpx.DecodeJSON(resp, &classifier); err != nil {
		return nil, err
	}
	return &classifier, nil
}

// List returns all classifiers owned by the authenticated service instance.
func (c *Client) List(ctx context.Context) ([]Classifier, error) {
	req := watson.Request{
		Method:     http.MethodGet,
		URL:        c.url + "/v1/classifiers",
		AcceptType: "application/json",
		Auth:       &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return nil, err
	}
	defer httpx.CloseQuietly(resp)

	var payload struct {
		Classifiers []Classifier `json:"classifiers"`
	}
	if err := httpx.DecodeJSON(resp, &payload); err != nil {
		return nil, err
	}

	c.logger.Debug("classifiers listed", zap.Int("count", len(payload.Classifiers)))
	return payload.Classifiers, nil
}

// Get returns the status and metadata of a single classifier.
func (c *Client) Get(ctx context.Context, classifierID string) (*Classifier, error) {
	id, err := sanitizeClassifierID(classifierID)
	if err != nil {
		return nil, err
	}

	req := watson.Request{
		Method:     http.MethodGet,
		URL:        c.url + "/v1/classifiers/" + url.PathEscape(id),
		AcceptType: "application/json",
		Auth:       &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return nil, err
	}
	defer httpx.CloseQuietly(resp)

	var classifier Classifier
	if err := httpx.DecodeJSON(resp, &classifier); err != nil {
		return nil, err
	}
	return &classifier, nil
}

// Classify labels the supplied text using a trained classifier.
func (c *Client) Classify(ctx context.Context, classifierID, text string) (*Classification, error) {
	id, err := sanitizeClassifierID(classifierID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	req := watson.Request{
		Method:      http.MethodPost,
		URL:         c.url + "/v1/classifiers/" + url.PathEscape(id) + "/classify",
		AcceptType:  "application/json",
		ContentType: "application/json",
		Body:        body,
		Auth:        &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return nil, err
	}
	defer httpx.CloseQuietly(resp)

	var classification Classification
	if err := httpx.DecodeJSON(resp, &classification); err != nil {
		return nil, err
	}

	c.logger.Debug("text classified",
		zap.String("classifier_id", id),
		zap.String("top_class", classification.TopClass))
	return &classification, nil
}

// Delete removes a classifier. Deleting an already-deleted classifier yields
// an *watson.APIError with status 404.
func (c *Client) Delete(ctx context.Context, classifierID string) error {
	id, err := sanitizeClassifierID(classifierID)
	if err != nil {
		return err
	}

	req := watson.Request{
		Method:     http.MethodDelete,
		URL:        c.url + "/v1/classifiers/" + url.PathEscape(id),
		AcceptType: "application/json",
		Auth:       &c.auth,
	}

	resp, err := req.Do(ctx, c.http)
	if err != nil {
		return err
	}
	httpx.CloseQuietly(resp)

	c.logger.Debug("classifier deleted", zap.String("classifier_id", id))
	return nil
}

func sanitizeClassifierID(classifierID string) (string, error) {
	id := strings.TrimSpace(classifierID)
	if id == "" {
		return "", errors.New("classifier ID is required")
	}
	return id, nil
}
