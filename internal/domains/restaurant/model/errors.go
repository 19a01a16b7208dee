package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeRestaurantNotFound = "RST001"
	ErrCodeValidation         = "RST002"
)

// Errors
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
)

// RestaurantError custom error type
type RestaurantError struct {
	Code    string
	Message string
	Err     error
}

func (e *RestaurantError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RestaurantError) Unwrap() error {
	return e.Err
}

func NewRestaurantNotFoundError() *RestaurantError {
	return &RestaurantError{
		Code:    ErrCodeRestaurantNotFound,
		Message: "Restaurant not found",
		Err:     ErrRestaurantNotFound,
	}
}

func NewValidationError(message string) *RestaurantError {
	return &RestaurantError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}
