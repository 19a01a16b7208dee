package service

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/vote/model"
)

// ServiceInterface defines vote business logic.
type ServiceInterface interface {
	// CastVote records a helpfulness vote and bumps the matching
	// counter on the review. A second vote by the same user on the
	// same review fails with a duplicate-vote error regardless of
	// kind; the first vote stands.
	CastVote(ctx context.Context, reviewID, userID uuid.UUID, req model.CastVoteRequest) error
}
