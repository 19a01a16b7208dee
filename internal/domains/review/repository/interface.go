package repository

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/review/model"
)

// ModerationItem is a review as shown in the moderation queues,
// with the owning restaurant's name joined in.
type ModerationItem struct {
	Review         model.Review
	RestaurantName string
}

// ReviewRepository defines data access for reviews.
//
// The backing store gives per-row atomic updates only; there are no
// multi-row transactions here, matching the request/response model
// where every action is a single round trip.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Public listing: approved reviews only, with author usernames.
	ListApprovedByRestaurant(ctx context.Context, restaurantID uuid.UUID, sort string) ([]*model.Review, error)

	// Rating projection for the aggregator: every review of the
	// restaurant with its approved flag; filtering is the aggregator's job.
	ListRatingsByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]rating.ReviewRating, error)

	// Moderation flags. Each is a single-column update on one row.
	SetApproved(ctx context.Context, id uuid.UUID) error
	SetReported(ctx context.Context, id uuid.UUID) error
	ClearReported(ctx context.Context, id uuid.UUID) error
	SetResponse(ctx context.Context, id uuid.UUID, response string) error

	// Vote tallies. Values are absolute, written from what the caller
	// read; this is deliberately not an in-database increment.
	UpdateVoteCounts(ctx context.Context, id uuid.UUID, helpful, unhelpful int) error

	// Moderation queues, newest first.
	ListPending(ctx context.Context) ([]ModerationItem, error)
	ListReported(ctx context.Context) ([]ModerationItem, error)
	ListApproved(ctx context.Context) ([]ModerationItem, error)
}
