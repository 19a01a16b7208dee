package repository

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/vote/model"
)

// VoteRepository defines persistence for helpfulness votes.
type VoteRepository interface {
	// Create inserts a vote. Returns model.ErrDuplicateVote when the
	// user has already voted on the review, whatever the kind.
	Create(ctx context.Context, vote *model.Vote) error

	// HasVoted reports whether the user already voted on the review.
	HasVoted(ctx context.Context, reviewID, userID uuid.UUID) (bool, error)
}
