package service

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/moderation/model"
)

// ServiceInterface defines moderation business logic. All operations
// assume the caller has already been checked for a moderator role.
type ServiceInterface interface {
	// Queues returns every moderation work list in one payload.
	Queues(ctx context.Context) (*model.QueuesResponse, error)

	// Approve publishes a pending item. It does not touch the
	// reported flag: an approved item that was reported stays in the
	// reported queue until a moderator marks it safe.
	Approve(ctx context.Context, kind model.ContentKind, id uuid.UUID) error

	// MarkSafe clears the reported flag and nothing else.
	MarkSafe(ctx context.Context, kind model.ContentKind, id uuid.UUID) error

	// Reject permanently deletes the item, whatever its state.
	Reject(ctx context.Context, kind model.ContentKind, id uuid.UUID) error

	// Respond attaches an owner response to an approved review.
	// Comments cannot carry responses.
	Respond(ctx context.Context, kind model.ContentKind, id uuid.UUID, req model.RespondRequest) error
}
