package recommending

import (
	"errors"
	"fmt"
)

// Errors of the recommendation context.
var (
	ErrScoring    = errors.New("error scoring client metrics")
	ErrExportRow  = errors.New("error writing recommendation row")
	ErrListEmpty  = errors.New("no clients available in the record store")
	ErrNoProducts = errors.New("no eligible products for client")
)

// RecommendationError carries the API error code and the client involved
// alongside the base error.
type RecommendationError struct {
	Err        error  // base error
	Code       string // API error code
	ClientCode int    // client involved, 0 when not applicable
	Details    string // additional context
}

func (e *RecommendationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// NewRecommendationError creates a RecommendationError without a client.
func NewRecommendationError(err error, code string, details string) *RecommendationError {
	return &RecommendationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewClientError creates a RecommendationError tied to one client code.
func NewClientError(err error, code string, clientCode int, details string) *RecommendationError {
	return &RecommendationError{
		Err:        err,
		Code:       code,
		ClientCode: clientCode,
		Details:    details,
	}
}
