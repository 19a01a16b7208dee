package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	commentmodel "tastehub-backend/internal/domains/comment/model"
	commentrepo "tastehub-backend/internal/domains/comment/repository"
	"tastehub-backend/internal/domains/moderation/model"
	reviewmodel "tastehub-backend/internal/domains/review/model"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
)

type moderationService struct {
	reviewRepo  reviewrepo.ReviewRepository
	commentRepo commentrepo.CommentRepository
}

// NewModerationService creates a moderation service instance
func NewModerationService(reviewRepo reviewrepo.ReviewRepository, commentRepo commentrepo.CommentRepository) ServiceInterface {
	return &moderationService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
	}
}

func (s *moderationService) Queues(ctx context.Context) (*model.QueuesResponse, error) {
	pendingReviews, err := s.reviewRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reviews: %w", err)
	}

	reportedReviews, err := s.reviewRepo.ListReported(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reported reviews: %w", err)
	}

	approvedReviews, err := s.reviewRepo.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved reviews: %w", err)
	}

	pendingComments, err := s.commentRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending comments: %w", err)
	}

	reportedComments, err := s.commentRepo.ListReported(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reported comments: %w", err)
	}

	return &model.QueuesResponse{
		PendingReviews:   toReviewQueueItems(pendingReviews),
		ReportedReviews:  toReviewQueueItems(reportedReviews),
		ApprovedReviews:  toReviewQueueItems(approvedReviews),
		PendingComments:  toCommentQueueItems(pendingComments),
		ReportedComments: toCommentQueueItems(reportedComments),
	}, nil
}

func (s *moderationService) Approve(ctx context.Context, kind model.ContentKind, id uuid.UUID) error {
	// Approving does not clear the reported flag. A reported review
	// that gets approved is published, and stays queued for the
	// separate mark-safe decision.
	switch kind {
	case model.KindReviews:
		return s.mapReviewErr(kind, s.reviewRepo.SetApproved(ctx, id), "approve review")
	case model.KindComments:
		return s.mapCommentErr(kind, s.commentRepo.SetApproved(ctx, id), "approve comment")
	default:
		return model.NewUnknownKindError(string(kind))
	}
}

func (s *moderationService) MarkSafe(ctx context.Context, kind model.ContentKind, id uuid.UUID) error {
	switch kind {
	case model.KindReviews:
		return s.mapReviewErr(kind, s.reviewRepo.ClearReported(ctx, id), "mark review safe")
	case model.KindComments:
		return s.mapCommentErr(kind, s.commentRepo.ClearReported(ctx, id), "mark comment safe")
	default:
		return model.NewUnknownKindError(string(kind))
	}
}

func (s *moderationService) Reject(ctx context.Context, kind model.ContentKind, id uuid.UUID) error {
	// Hard delete. Applies to pending, approved and reported items alike.
	switch kind {
	case model.KindReviews:
		return s.mapReviewErr(kind, s.reviewRepo.Delete(ctx, id), "reject review")
	case model.KindComments:
		return s.mapCommentErr(kind, s.commentRepo.Delete(ctx, id), "reject comment")
	default:
		return model.NewUnknownKindError(string(kind))
	}
}

func (s *moderationService) Respond(ctx context.Context, kind model.ContentKind, id uuid.UUID, req model.RespondRequest) error {
	// Step 1: Responses exist for reviews only
	if kind != model.KindReviews {
		return model.NewRespondNotAllowedError("Responses can only be posted on reviews")
	}

	// Step 2: Validate the response text
	if err := req.Validate(); err != nil {
		return model.NewValidationError(err.Error())
	}

	// Step 3: The review must already be approved
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewmodel.ErrReviewNotFound) {
			return model.NewContentNotFoundError(kind)
		}
		return fmt.Errorf("failed to load review: %w", err)
	}
	if !review.Approved {
		return model.NewRespondNotAllowedError("Responses can only be posted on approved reviews")
	}

	// Step 4: Store the trimmed response
	if err := s.reviewRepo.SetResponse(ctx, id, strings.TrimSpace(req.Response)); err != nil {
		if errors.Is(err, reviewmodel.ErrReviewNotFound) {
			return model.NewContentNotFoundError(kind)
		}
		return fmt.Errorf("failed to store response: %w", err)
	}

	return nil
}

func (s *moderationService) mapReviewErr(kind model.ContentKind, err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, reviewmodel.ErrReviewNotFound) {
		return model.NewContentNotFoundError(kind)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func (s *moderationService) mapCommentErr(kind model.ContentKind, err error, action string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, commentmodel.ErrCommentNotFound) {
		return model.NewContentNotFoundError(kind)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func toReviewQueueItems(items []reviewrepo.ModerationItem) []model.ReviewQueueItem {
	out := make([]model.ReviewQueueItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.ReviewQueueItem{
			Review:         item.Review,
			RestaurantName: item.RestaurantName,
		})
	}
	return out
}

func toCommentQueueItems(items []commentrepo.ModerationItem) []model.CommentQueueItem {
	out := make([]model.CommentQueueItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.CommentQueueItem{
			Comment:        item.Comment,
			RestaurantName: item.RestaurantName,
		})
	}
	return out
}
