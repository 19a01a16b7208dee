package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeContentNotFound   = "MOD001"
	ErrCodeValidation        = "MOD002"
	ErrCodeUnknownKind       = "MOD003"
	ErrCodeRespondNotAllowed = "MOD004"
)

// Errors
var (
	ErrContentNotFound   = errors.New("content not found")
	ErrRespondNotAllowed = errors.New("responses are only allowed on approved reviews")
)

// ModerationError custom error type
type ModerationError struct {
	Code    string
	Message string
	Err     error
}

func (e *ModerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ModerationError) Unwrap() error {
	return e.Err
}

func NewContentNotFoundError(kind ContentKind) *ModerationError {
	return &ModerationError{
		Code:    ErrCodeContentNotFound,
		Message: fmt.Sprintf("No %s entry with that id", kind),
		Err:     ErrContentNotFound,
	}
}

func NewValidationError(message string) *ModerationError {
	return &ModerationError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

func NewUnknownKindError(kind string) *ModerationError {
	return &ModerationError{
		Code:    ErrCodeUnknownKind,
		Message: fmt.Sprintf("Unknown content kind %q", kind),
	}
}

func NewRespondNotAllowedError(reason string) *ModerationError {
	return &ModerationError{
		Code:    ErrCodeRespondNotAllowed,
		Message: reason,
		Err:     ErrRespondNotAllowed,
	}
}
