// Package error defines domain-specific errors for the Goal Tracker application.
package error

import "errors"

// Recommendation domain errors.
var (
	// ErrRecommendationNotFound is returned when a recommendation is not found
	// or not owned by the caller.
	ErrRecommendationNotFound = errors.New("recommendation not found")

	// ErrRecommendationResolved is returned when accepting or declining a
	// recommendation that has already left the suggested state.
	ErrRecommendationResolved = errors.New("recommendation already resolved")

	// ErrProfileRequired is returned when generating recommendations for a
	// user who has not completed onboarding.
	ErrProfileRequired = errors.New("onboarding profile required")
)

// RecommendationErrorCode defines error codes for recommendation errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecommendationErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeRecommendationNotFound RecommendationErrorCode = "REC-010001"
	ErrCodeProfileRequired        RecommendationErrorCode = "REC-010002"

	// State errors (02XXXX)
	ErrCodeRecommendationResolved RecommendationErrorCode = "REC-020001"
)

// RecommendationError represents a recommendation error with code and message.
type RecommendationError struct {
	Code    RecommendationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecommendationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecommendationError) Unwrap() error {
	return e.Err
}

// NewRecommendationError creates a new RecommendationError with the given code and message.
func NewRecommendationError(code RecommendationErrorCode, message string, err error) *RecommendationError {
	return &RecommendationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
