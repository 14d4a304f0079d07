// Package error defines domain-specific errors for the Goal Tracker application.
package error

import "errors"

// Progress domain errors.
var (
	// ErrProgressNotFound is returned when no progress entry exists for the requested day.
	ErrProgressNotFound = errors.New("progress entry not found")

	// ErrInvalidProgressValue is returned when the progress value is negative.
	ErrInvalidProgressValue = errors.New("invalid progress value")

	// ErrInvalidProgressDate is returned when the progress date cannot be parsed.
	ErrInvalidProgressDate = errors.New("invalid progress date")
)

// ProgressErrorCode defines error codes for progress errors.
// Format: PRG-XXYYYY where XX is category and YYYY is specific error.
type ProgressErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeProgressNotFound     ProgressErrorCode = "PRG-010001"
	ErrCodeInvalidProgressValue ProgressErrorCode = "PRG-010002"
	ErrCodeInvalidProgressDate  ProgressErrorCode = "PRG-010003"
)

// ProgressError represents a progress error with code and message.
type ProgressError struct {
	Code    ProgressErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProgressError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProgressError) Unwrap() error {
	return e.Err
}

// NewProgressError creates a new ProgressError with the given code and message.
func NewProgressError(code ProgressErrorCode, message string, err error) *ProgressError {
	return &ProgressError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
