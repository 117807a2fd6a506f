package apierrors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError describes the error payloads emitted by Watson services. The
// services are not uniform: older endpoints return {"code","error"} while
// newer ones return {"error_code","error_message"}; both map onto this type.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Help       string
}

// Error satisfies the error interface so callers can surface service failures directly.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Code != "" {
		return fmt.Sprintf("watson: %s (code %s)", e.Message, e.Code)
	}
	return fmt.Sprintf("watson: %s", e.Message)
}

// wireError is lenient about the shapes Watson error bodies take.
type wireError struct {
	Code         json.Number `json:"code"`
	ErrorText    string      `json:"error"`
	Description  string      `json:"description"`
	ErrorCode    json.Number `json:"error_code"`
	ErrorMessage string      `json:"error_message"`
	Help         string      `json:"help"`
}

// Decode converts an HTTP error response body into an APIError instance.
// Unparseable bodies become the error message verbatim rather than failing.
func Decode(resp *http.Response) (*APIError, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error response: %w", err)
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if len(body) == 0 {
		apiErr.Message = resp.Status
		return apiErr, nil
	}

	var wire wireError
	if err := json.Unmarshal(body, &wire); err != nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr, nil
	}

	apiErr.Code = wire.Code.String()
	if apiErr.Code == "" {
		apiErr.Code = wire.ErrorCode.String()
	}

	switch {
	case wire.ErrorText != "":
		apiErr.Message = wire.ErrorText
	case wire.ErrorMessage != "":
		apiErr.Message = wire.ErrorMessage
	case wire.Description != "":
		apiErr.Message = wire.Description
	default:
		apiErr.Message = resp.Status
	}

	apiErr.Help = wire.Help
	return apiErr, nil
}
