// Package error defines domain-specific errors for the NutriTrack application.
package error

import "errors"

// Meal domain errors.
var (
	// ErrMealNotFound is returned when a meal does not exist for the owner.
	ErrMealNotFound = errors.New("meal not found")

	// ErrMealWithoutItems is returned when a meal has no items.
	ErrMealWithoutItems = errors.New("meal must contain at least one item")

	// ErrInvalidQuantity is returned when an item quantity is not positive or too large to store.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidUnit is returned when an item unit is unknown.
	ErrInvalidUnit = errors.New("invalid measurement unit")

	// ErrInvalidMealType is returned when the meal type is unknown.
	ErrInvalidMealType = errors.New("invalid meal type")

	// ErrInvalidDateRange is returned when a date range is malformed or reversed.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// MealErrorCode defines error codes for meal errors.
// Format: MEA-XXYYYY where XX is category and YYYY is specific error.
type MealErrorCode string

const (
	ErrCodeMealNotFound      MealErrorCode = "MEA-010001"
	ErrCodeMealWithoutItems  MealErrorCode = "MEA-010002"
	ErrCodeInvalidQuantity   MealErrorCode = "MEA-010003"
	ErrCodeInvalidUnit       MealErrorCode = "MEA-010004"
	ErrCodeInvalidMealType   MealErrorCode = "MEA-010005"
	ErrCodeMealFoodNotFound  MealErrorCode = "MEA-010006"
	ErrCodeInvalidDateRange  MealErrorCode = "MEA-010007"
	ErrCodeMissingMealFields MealErrorCode = "MEA-010008"
)

// MealError represents a meal error with code and message.
type MealError struct {
	Code    MealErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MealError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MealError) Unwrap() error {
	return e.Err
}

// NewMealError creates a new MealError with the given code and message.
func NewMealError(code MealErrorCode, message string, err error) *MealError {
	return &MealError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
