package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	commentRepo "tastehub-backend/internal/domains/comment/repository"
	"tastehub-backend/internal/domains/review/model"
	"tastehub-backend/internal/domains/review/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	commentRepo commentRepo.CommentRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	commentRepo commentRepo.CommentRepository,
) ServiceInterface {
	return &reviewService{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
	}
}

// =====================================================
// SUBMIT REVIEW
// =====================================================

func (s *reviewService) SubmitReview(
	ctx context.Context,
	restaurantID, userID uuid.UUID,
	req model.CreateReviewRequest,
) (*model.Review, error) {
	// Step 1: Require a signed-in author
	if userID == uuid.Nil {
		return nil, model.NewNotSignedInError()
	}

	// Step 2: Validate request before touching the store
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	// Step 3: Create review entity in the pending state
	review := &model.Review{
		ID:             uuid.New(),
		RestaurantID:   restaurantID,
		UserID:         userID,
		Comment:        strings.TrimSpace(req.Comment),
		Rating:         req.Rating,
		HelpfulCount:   0,
		UnhelpfulCount: 0,
		Approved:       false, // pending until a moderator approves
		Reported:       false,
		CreatedAt:      time.Now(),
	}

	// Step 4: Save to database
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// =====================================================
// PUBLIC LISTING
// =====================================================

func (s *reviewService) ListVisible(
	ctx context.Context,
	restaurantID uuid.UUID,
	req model.ListReviewsRequest,
) ([]model.ReviewResponse, error) {
	// Step 1: Validate sort option
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	// Step 2: Fetch approved reviews
	reviews, err := s.reviewRepo.ListApprovedByRestaurant(ctx, restaurantID, req.Sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	// Step 3: Attach visible comments in one query
	reviewIDs := make([]uuid.UUID, 0, len(reviews))
	for _, review := range reviews {
		reviewIDs = append(reviewIDs, review.ID)
	}

	commentsByReview, err := s.commentRepo.ListApprovedByReviews(ctx, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	// Step 4: Build responses
	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		comments := make([]model.CommentView, 0, len(commentsByReview[review.ID]))
		for _, c := range commentsByReview[review.ID] {
			comments = append(comments, model.CommentView{
				ID:       c.ID,
				Comment:  c.Comment,
				Reported: c.Reported,
				Username: c.Username,
			})
		}

		responses = append(responses, model.ReviewResponse{
			ID:             review.ID,
			RestaurantID:   review.RestaurantID,
			UserID:         review.UserID,
			Username:       review.Username,
			Comment:        review.Comment,
			Rating:         review.Rating,
			Response:       review.Response,
			HelpfulCount:   review.HelpfulCount,
			UnhelpfulCount: review.UnhelpfulCount,
			Reported:       review.Reported,
			Comments:       comments,
			CreatedAt:      review.CreatedAt,
		})
	}

	return responses, nil
}

// =====================================================
// DELETE OWN REVIEW
// =====================================================

func (s *reviewService) DeleteOwn(ctx context.Context, reviewID, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return model.NewNotSignedInError()
	}

	// Step 1: Get review
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to get review: %w", err)
	}

	// Step 2: Verify ownership before any mutation
	if review.UserID != userID {
		return model.NewNotAuthorError()
	}

	// Step 3: Delete review
	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}

// =====================================================
// REPORT REVIEW
// =====================================================

func (s *reviewService) Report(ctx context.Context, reviewID, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return model.NewNotSignedInError()
	}

	// Reporting sets the overlay flag only; an approved review stays
	// visible until a moderator decides otherwise.
	if err := s.reviewRepo.SetReported(ctx, reviewID); err != nil {
		if errors.Is(err, model.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to report review: %w", err)
	}

	return nil
}
