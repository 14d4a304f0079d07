// Package error defines domain-specific errors for the Goal Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found or not owned by the caller.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalCategory is returned when the goal category is not a known value.
	ErrInvalidGoalCategory = errors.New("invalid goal category")

	// ErrInvalidTargetValue is returned when the target value is zero or negative.
	ErrInvalidTargetValue = errors.New("invalid target value")

	// ErrInvalidGoalDates is returned when the end date does not come after the start date.
	ErrInvalidGoalDates = errors.New("end date must be after start date")

	// ErrMissingGoalFields is returned when required goal fields are absent.
	ErrMissingGoalFields = errors.New("missing required goal fields")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrGoalAbandoned is returned when progress is recorded against an abandoned goal.
	ErrGoalAbandoned = errors.New("goal has been abandoned")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalCategory    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetValue     GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalDates       GoalErrorCode = "GOL-010004"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010005"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010006"

	// State errors (02XXXX)
	ErrCodeGoalAbandoned GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
