// Package error defines domain-specific errors for the Goal Tracker application.
package error

import "errors"

// Onboarding profile domain errors.
var (
	// ErrProfileNotFound is returned when a user has no onboarding profile yet.
	ErrProfileNotFound = errors.New("onboarding profile not found")

	// ErrInvalidProfileField is returned when a survey answer is out of range.
	ErrInvalidProfileField = errors.New("invalid profile field")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeProfileNotFound     ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidProfileField ProfileErrorCode = "PRF-010002"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
