package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCommentRequest request to post a comment under a review
type CreateCommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
			validation.By(notBlank),
			validation.Length(0, 2000),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
