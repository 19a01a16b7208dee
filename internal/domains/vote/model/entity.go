package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind is the direction of a helpfulness vote.
type Kind string

const (
	KindHelpful   Kind = "helpful"
	KindUnhelpful Kind = "unhelpful"
)

// Vote records that a user voted on a review. The pair
// (review_id, user_id) is unique: one vote per user per review,
// regardless of kind.
type Vote struct {
	ID        uuid.UUID `json:"id"`
	ReviewID  uuid.UUID `json:"review_id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
