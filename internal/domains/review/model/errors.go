package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeReviewNotFound = "RVW001"
	ErrCodeValidation     = "RVW002"
	ErrCodeNotSignedIn    = "RVW003"
	ErrCodeNotAuthor      = "RVW004"
	ErrCodeNotApproved    = "RVW005"
)

// Errors
var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotSignedIn    = errors.New("action requires a signed-in user")
	ErrNotAuthor      = errors.New("not the author of this review")
	ErrNotApproved    = errors.New("review is not approved")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewReviewNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}

func NewValidationError(message string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewNotSignedInError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotSignedIn,
		Message: "You must be logged in to perform this action",
		Err:     ErrNotSignedIn,
	}
}

func NewNotAuthorError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotAuthor,
		Message: "You can only delete your own reviews",
		Err:     ErrNotAuthor,
	}
}

func NewNotApprovedError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeNotApproved,
		Message: "Responses are only allowed on approved reviews",
		Err:     ErrNotApproved,
	}
}
