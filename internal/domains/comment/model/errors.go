package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCommentNotFound = "CMT001"
	ErrCodeValidation      = "CMT002"
	ErrCodeNotSignedIn     = "CMT003"
	ErrCodeReviewNotFound  = "CMT004"
)

// Errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotSignedIn     = errors.New("action requires a signed-in user")
	ErrReviewNotFound  = errors.New("parent review not found")
)

// CommentError custom error type
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewValidationError(message string) *CommentError {
	return &CommentError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewNotSignedInError() *CommentError {
	return &CommentError{
		Code:    ErrCodeNotSignedIn,
		Message: "You must be logged in to post a comment",
		Err:     ErrNotSignedIn,
	}
}

func NewReviewNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeReviewNotFound,
		Message: "Review not found",
		Err:     ErrReviewNotFound,
	}
}
