// Package error defines domain-specific errors for the NutriTrack application.
package error

import "errors"

// Food catalog domain errors.
var (
	// ErrFoodNotFound is returned when a food is not present in the catalog.
	ErrFoodNotFound = errors.New("food not found")

	// ErrInvalidNutrientValue is returned when a nutrient value of a food is negative.
	ErrInvalidNutrientValue = errors.New("invalid nutrient value")

	// ErrFoodNameAlreadyExists is returned when another food already uses the name.
	ErrFoodNameAlreadyExists = errors.New("food name already exists")

	// ErrFoodNameRequired is returned when the food name is empty.
	ErrFoodNameRequired = errors.New("food name is required")
)

// FoodErrorCode defines error codes for food errors.
// Format: FOD-XXYYYY where XX is category and YYYY is specific error.
type FoodErrorCode string

const (
	ErrCodeFoodNotFound          FoodErrorCode = "FOD-010001"
	ErrCodeInvalidNutrientValue  FoodErrorCode = "FOD-010002"
	ErrCodeFoodNameAlreadyExists FoodErrorCode = "FOD-010003"
	ErrCodeFoodNameRequired      FoodErrorCode = "FOD-010004"
	ErrCodeMissingFoodFields     FoodErrorCode = "FOD-010005"
)

// FoodError represents a food error with code and message.
type FoodError struct {
	Code    FoodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FoodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FoodError) Unwrap() error {
	return e.Err
}

// NewFoodError creates a new FoodError with the given code and message.
func NewFoodError(code FoodErrorCode, message string, err error) *FoodError {
	return &FoodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
