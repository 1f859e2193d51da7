package api

import (
	"errors"
	"fmt"
)

// ErrInvalidShape marks a response body that did not match the endpoint's
// declared schema. Callers get a typed error instead of half-decoded state.
var ErrInvalidShape = errors.New("invalid response shape")

// APIError is the normalized failure shape for every remote call: the
// human-readable message comes from the response body when the server sent
// one, otherwise it is a generic network-error message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: %s", e.Message)
}

const genericNetworkError = "something went wrong, please try again"

func networkError(err error) *APIError {
	if err != nil {
		return &APIError{Message: genericNetworkError + ": " + err.Error()}
	}
	return &APIError{Message: genericNetworkError}
}
