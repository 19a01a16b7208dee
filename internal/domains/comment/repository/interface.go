package repository

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/comment/model"
)

// ModerationItem is a comment as shown in the moderation queues; the
// restaurant name comes from the comment's parent review.
type ModerationItem struct {
	Comment        model.Comment
	RestaurantName string
}

// CommentRepository defines data access for review comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Visible comments for a set of reviews, with author usernames.
	ListApprovedByReviews(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]model.Comment, error)

	// Moderation flags
	SetApproved(ctx context.Context, id uuid.UUID) error
	SetReported(ctx context.Context, id uuid.UUID) error
	ClearReported(ctx context.Context, id uuid.UUID) error

	// Moderation queues, newest first.
	ListPending(ctx context.Context) ([]ModerationItem, error)
	ListReported(ctx context.Context) ([]ModerationItem, error)
}
