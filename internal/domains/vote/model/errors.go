package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeDuplicateVote  = "VOT001"
	ErrCodeValidation     = "VOT002"
	ErrCodeNotSignedIn    = "VOT003"
	ErrCodeReviewNotFound = "VOT004"
)

// Errors
var (
	ErrDuplicateVote  = errors.New("user has already voted on this review")
	ErrNotSignedIn    = errors.New("action requires a signed-in user")
	ErrReviewNotFound = errors.New("review not found")
)

// VoteError custom error type
type VoteError struct {
	Code    string
	Message string
	Err     error
}

func (e *VoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *VoteError) Unwrap() error {
	return e.Err
}

func NewDuplicateVoteError() *VoteError {
	return &VoteError{
		Code:    ErrCodeDuplicateVote,
		Message: "You have already voted on this review",
		Err:     ErrDuplicateVote,
	}
}

func NewValidationError(message string) *VoteError {
	return &VoteError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewNotSignedInError() *VoteError {
	return &VoteError{
		Code:    ErrCodeNotSignedIn,
		Message: "You must be logged in to vote",
		Err:     ErrNotSignedIn,
	}
}

func NewReviewNotFoundError() *VoteError {
	return &VoteError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}
