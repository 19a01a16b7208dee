package service

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/comment/model"
)

// ServiceInterface defines comment business logic.
type ServiceInterface interface {
	// SubmitComment validates and creates a comment in the pending
	// state. The parent review's own approval state is irrelevant:
	// a comment may be pending under an approved review.
	SubmitComment(ctx context.Context, reviewID, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error)

	// Report flags a comment for moderator re-review. Idempotent.
	Report(ctx context.Context, commentID, userID uuid.UUID) error
}
