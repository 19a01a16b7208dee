package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CastVoteRequest DTO for casting a helpfulness vote
type CastVoteRequest struct {
	Kind string `json:"kind"`
}

func (r CastVoteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required.Error("vote kind is required"),
			validation.In(string(KindHelpful), string(KindUnhelpful)).Error("vote kind must be helpful or unhelpful"),
		),
	)
}
