package service

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/review/model"
)

// ServiceInterface defines review business logic.
type ServiceInterface interface {
	// SubmitReview validates and creates a review in the pending state.
	// The review is invisible to the public until a moderator approves it.
	SubmitReview(ctx context.Context, restaurantID, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error)

	// ListVisible returns a restaurant's approved reviews with their
	// visible comments attached.
	ListVisible(ctx context.Context, restaurantID uuid.UUID, req model.ListReviewsRequest) ([]model.ReviewResponse, error)

	// DeleteOwn removes a review, but only for its author.
	DeleteOwn(ctx context.Context, reviewID, userID uuid.UUID) error

	// Report flags a review for moderator re-review. Idempotent, and it
	// does not hide an approved review.
	Report(ctx context.Context, reviewID, userID uuid.UUID) error
}
