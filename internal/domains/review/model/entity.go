package model

import (
	"time"

	"github.com/google/uuid"
)

// Review represents a restaurant review entity.
//
// Approved and Reported are two independent flags, not a single enum:
// a review can be approved and reported at the same time. Reporting
// never hides an approved review, it only queues it for re-review.
type Review struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	UserID       uuid.UUID `json:"user_id"`

	// Content
	Comment string `json:"comment"`
	Rating  int    `json:"rating"` // 1-5

	// Vote tallies, maintained by the vote ledger
	HelpfulCount   int `json:"helpful_count"`
	UnhelpfulCount int `json:"unhelpful_count"`

	// Moderation
	Approved bool    `json:"approved"`
	Reported bool    `json:"reported"`
	Response *string `json:"response"` // company reply, set by moderators

	CreatedAt time.Time `json:"created_at"`

	// Populated by list queries joining the users table
	Username string `json:"username,omitempty"`
}

// VisibleToPublic reports whether ordinary users may see this review.
func (r *Review) VisibleToPublic() bool {
	return r.Approved
}
