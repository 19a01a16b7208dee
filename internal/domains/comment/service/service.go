package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/comment/model"
	"tastehub-backend/internal/domains/comment/repository"
	reviewmodel "tastehub-backend/internal/domains/review/model"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
)

type commentService struct {
	commentRepo repository.CommentRepository
	reviewRepo  reviewrepo.ReviewRepository
}

// NewCommentService creates a comment service instance
func NewCommentService(commentRepo repository.CommentRepository, reviewRepo reviewrepo.ReviewRepository) ServiceInterface {
	return &commentService{
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
	}
}

func (s *commentService) SubmitComment(ctx context.Context, reviewID, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error) {
	// Step 1: Require a signed-in author
	if userID == uuid.Nil {
		return nil, model.NewNotSignedInError()
	}

	// Step 2: Validate input
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	// Step 3: The parent review must exist
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		if errors.Is(err, reviewmodel.ErrReviewNotFound) {
			return nil, model.NewReviewNotFoundError()
		}
		return nil, fmt.Errorf("failed to load parent review: %w", err)
	}

	// Step 4: Build the entity, pending until a moderator approves it
	comment := &model.Comment{
		ID:        uuid.New(),
		ReviewID:  reviewID,
		UserID:    userID,
		Comment:   strings.TrimSpace(req.Comment),
		Approved:  false,
		Reported:  false,
		CreatedAt: time.Now(),
	}

	// Step 5: Persist
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) Report(ctx context.Context, commentID, userID uuid.UUID) error {
	// Step 1: Require a signed-in reporter
	if userID == uuid.Nil {
		return model.NewNotSignedInError()
	}

	// Step 2: Flag the comment. Reporting never hides approved content;
	// it only queues the comment for moderator re-review.
	if err := s.commentRepo.SetReported(ctx, commentID); err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return model.NewCommentNotFoundError()
		}
		return fmt.Errorf("failed to report comment: %w", err)
	}

	return nil
}
