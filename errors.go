package watson

import (
	"errors"

	"github.com/watson-community/watson-go-sdk/internal/apierrors"
)

// APIError represents a structured error returned by a Watson service.
type APIError = apierrors.APIError

// AsAPIError reports whether err (or any error it wraps) is an APIError and
// returns it for status and code inspection.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
