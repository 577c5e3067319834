// Package error defines domain-specific errors for the NutriTrack application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalAlreadyExists is returned when the owner already has a goal of the requested type.
	ErrGoalAlreadyExists = errors.New("a goal of this type already exists for this user")

	// ErrInvalidNutrientTarget is returned when a target value is negative or missing.
	ErrInvalidNutrientTarget = errors.New("invalid nutrient target")

	// ErrInvalidGoalType is returned when the goal type is not DAILY, WEEKLY or MONTHLY.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrDerivedGoalReadOnly is returned when a weekly or monthly goal is updated directly.
	ErrDerivedGoalReadOnly = errors.New("derived goals cannot be updated directly")

	// ErrActiveGoalNotFound is returned when there is no current goal of a type for an owner.
	ErrActiveGoalNotFound = errors.New("no active goal of this type for this user")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Goal errors (01XXXX)
	ErrCodeGoalNotFound          GoalErrorCode = "GOL-010001"
	ErrCodeGoalAlreadyExists     GoalErrorCode = "GOL-010002"
	ErrCodeInvalidNutrientTarget GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalType       GoalErrorCode = "GOL-010004"
	ErrCodeDerivedGoalReadOnly   GoalErrorCode = "GOL-010005"
	ErrCodeActiveGoalNotFound    GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields     GoalErrorCode = "GOL-010007"
	ErrCodeInvalidOwnerID        GoalErrorCode = "GOL-010008"
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
