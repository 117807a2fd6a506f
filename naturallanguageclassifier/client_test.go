package naturallanguageclassifier_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	watson "github.com/watson-community/watson-go-sdk"
	"github.com/watson-community/watson-go-sdk/naturallanguageclassifier"
)

const classifierFixture = `{
	"classifier_id": "10D41B-nlc-1",
	"url": "https://gateway.watsonplatform.net/natural-language-classifier/api/v1/classifiers/10D41B-nlc-1",
	"name": "My Classifier",
	"language": "en",
	"created": "2015-05-28T18:01:57.393Z",
	"status": "Available",
	"status_description": "The classifier instance is now available and is ready to take classifier requests."
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*naturallanguageclassifier.Client, func()) {
	t.Helper()

	srv := httptest.NewServer(handler)

	client, err := naturallanguageclassifier.NewClient(watson.Config{
		URL:      srv.URL,
		Username: "test-user",
		Password: "test-pass",
	})
	require.NoError(t, err)

	return client, srv.Close
}

func TestNewClientAppliesDefaultURL(t *testing.T) {
	_, err := naturallanguageclassifier.NewClient(watson.Config{
		Username: "user",
		Password: "pass",
	})
	require.NoError(t, err)
}

func TestNewClientRejectsMissingCredentials(t *testing.T) {
	_, err := naturallanguageclassifier.NewClient(watson.Config{Username: "user"})
	require.Error(t, err)
}

func TestGetDecodesClassifierFixture(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/classifiers/10D41B-nlc-1", r.URL.Path)

		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "test-user", username)
		require.Equal(t, "test-pass", password)

		_, _ = w.Write([]byte(classifierFixture))
	})
	defer cleanup()

	classifier, err := client.Get(context.Background(), "10D41B-nlc-1")
	require.NoError(t, err)
	require.Equal(t, "10D41B-nlc-1", classifier.ClassifierID)
	require.Equal(t, "https://gateway.watsonplatform.net/natural-language-classifier/api/v1/classifiers/10D41B-nlc-1", classifier.URL)
	require.Equal(t, "My Classifier", classifier.Name)
	require.Equal(t, "en", classifier.Language)
	require.Equal(t, time.Date(2015, 5, 28, 18, 1, 57, 393000000, time.UTC), classifier.Created.UTC())
	require.Equal(t, naturallanguageclassifier.StatusAvailable, classifier.Status)
}

func TestGetRejectsBlankClassifierID(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request: %s", r.URL.Path)
	})
	defer cleanup()

	_, err := client.Get(context.Background(), "   ")
	require.Error(t, err)
}

func TestListReturnsClassifiers(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/classifiers", r.URL.Path)
		_, _ = w.Write([]byte(`{"classifiers":[` + classifierFixture + `]}`))
	})
	defer cleanup()

	classifiers, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, classifiers, 1)
	require.Equal(t, "10D41B-nlc-1", classifiers[0].ClassifierID)
}

func TestClassifySendsTextAndDecodesResult(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/classifiers/10D41B-nlc-1/classify", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "How hot will it be today?", body["text"])

		_, _ = w.Write([]byte(`{
			"classifier_id": "10D41B-nlc-1",
			"url": "https://gateway.watsonplatform.net/natural-language-classifier/api/v1/classifiers/10D41B-nlc-1",
			"text": "How hot will it be today?",
			"top_class": "temperature",
			"classes": [
				{"class_name": "temperature", "confidence": 0.9998201},
				{"class_name": "conditions", "confidence": 0.0001798}
			]
		}`))
	})
	defer cleanup()

	classification, err := client.Classify(context.Background(), "10D41B-nlc-1", "How hot will it be today?")
	require.NoError(t, err)
	require.Equal(t, "temperature", classification.TopClass)
	require.Len(t, classification.Classes, 2)
	require.Equal(t, "temperature", classification.Classes[0].Name)
	require.InDelta(t, 0.9998201, classification.Classes[0].Confidence, 1e-9)
}

func TestClassifyRejectsEmptyText(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request: %s", r.URL.Path)
	})
	defer cleanup()

	_, err := client.Classify(context.Background(), "10D41B-nlc-1", "")
	require.Error(t, err)
}

func TestCreateUploadsMultipartForm(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/classifiers", r.URL.Path)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))

		var metadata naturallanguageclassifier.TrainingMetadata
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("training_metadata")), &metadata))
		require.Equal(t, "Weather", metadata.Name)
		require.Equal(t, "en", metadata.Language)

		file, _, err := r.FormFile("training_data")
		require.NoError(t, err)
		defer file.Close()

		var csv strings.Builder
		_, err = io.Copy(&csv, file)
		require.NoError(t, err)
		require.Equal(t, "How hot is it?,temperature\n", csv.String())

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(classifierFixture))
	})
	defer cleanup()

	metadata := naturallanguageclassifier.TrainingMetadata{Name: "Weather", Language: "en"}
	trainingData := strings.NewReader("How hot is it?,temperature\n")

	classifier, err := client.Create(context.Background(), metadata, trainingData)
	require.NoError(t, err)
	require.Equal(t, "10D41B-nlc-1", classifier.ClassifierID)
}

func TestCreateRequiresLanguageAndData(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request: %s", r.URL.Path)
	})
	defer cleanup()

	_, err := client.Create(context.Background(), naturallanguageclassifier.TrainingMetadata{}, strings.NewReader("a,b\n"))
	require.Error(t, err)

	_, err = client.Create(context.Background(), naturallanguageclassifier.TrainingMetadata{Language: "en"}, nil)
	require.Error(t, err)
}

func TestDeleteSucceeds(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/v1/classifiers/10D41B-nlc-1", r.URL.Path)
		_, _ = w.Write([]byte("{}"))
	})
	defer cleanup()

	require.NoError(t, client.Delete(context.Background(), "10D41B-nlc-1"))
}

func TestDeleteSurfacesAPIError(t *testing.T) {
	client, cleanup := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"error":"Not found"}`))
	})
	defer cleanup()

	err := client.Delete(context.Background(), "gone")
	require.Error(t, err)

	apiErr, ok := watson.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Not found", apiErr.Message)
}
