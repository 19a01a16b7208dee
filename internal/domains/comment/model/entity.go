package model

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply attached to a review. Visibility follows the same
// rule as reviews: only approved comments are shown to the public, and
// the reported flag is an overlay that never hides an approved comment.
type Comment struct {
	ID       uuid.UUID `json:"id"`
	ReviewID uuid.UUID `json:"review_id"`
	UserID   uuid.UUID `json:"user_id"`

	Comment string `json:"comment"`

	Approved bool `json:"approved"`
	Reported bool `json:"reported"`

	CreatedAt time.Time `json:"created_at"`

	// Populated by list queries joining the users table
	Username string `json:"username,omitempty"`
}
