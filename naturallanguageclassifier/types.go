package naturallanguageclassifier

import (
	"errors"
	"strings"
	"time"
)

// Classifier statuses reported by the service.
const (
	StatusNonExistent = "Non Existent"
	StatusTraining    = "Training"
	StatusFailed      = "Failed"
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

// TrainingMetadata identifies a classifier to be created.
type TrainingMetadata struct {
	Name     string `json:"name,omitempty"`
	Language string `json:"language"`
}

func (m TrainingMetadata) validate() error {
	if strings.TrimSpace(m.Language) == "" {
		return errors.New("training metadata language is required")
	}
	return nil
}

// Classifier mirrors the classifier record returned by the service.
type Classifier struct {
	ClassifierID      string    `json:"classifier_id"`
	URL               string    `json:"url"`
	Name              string    `json:"name,omitempty"`
	Language          string    `json:"language,omitempty"`
	Created           time.Time `json:"created"`
	Status            string    `json:"status,omitempty"`
	StatusDescription string    `json:"status_description,omitempty"`
}

// Classification is the result of labelling one text input.
type Classification struct {
	ClassifierID string  `json:"classifier_id"`
	URL          string  `json:"url"`
	Text         string  `json:"text"`
	TopClass     string  `json:"top_class"`
	Classes      []Class `json:"classes"`
}

// Class is a single candidate label with its confidence score.
type Class struct {
	Name       string  `json:"class_name"`
	Confidence float64 `json:"confidence"`
}

type classifyRequest struct {
	Text string `json:"text"`
}
