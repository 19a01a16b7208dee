package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	reviewmodel "tastehub-backend/internal/domains/review/model"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
	"tastehub-backend/internal/domains/vote/model"
	"tastehub-backend/internal/domains/vote/repository"
)

type voteService struct {
	voteRepo   repository.VoteRepository
	reviewRepo reviewrepo.ReviewRepository
}

// NewVoteService creates a vote service instance
func NewVoteService(voteRepo repository.VoteRepository, reviewRepo reviewrepo.ReviewRepository) ServiceInterface {
	return &voteService{
		voteRepo:   voteRepo,
		reviewRepo: reviewRepo,
	}
}

func (s *voteService) CastVote(ctx context.Context, reviewID, userID uuid.UUID, req model.CastVoteRequest) error {
	// Step 1: Require a signed-in voter
	if userID == uuid.Nil {
		return model.NewNotSignedInError()
	}

	// Step 2: Validate input
	if err := req.Validate(); err != nil {
		return model.NewValidationError(err.Error())
	}

	// Step 3: Fast duplicate check. The unique constraint on
	// (review_id, user_id) remains the authoritative guard; this
	// read only avoids burning an insert for the common repeat case.
	voted, err := s.voteRepo.HasVoted(ctx, reviewID, userID)
	if err != nil {
		return fmt.Errorf("failed to check existing vote: %w", err)
	}
	if voted {
		return model.NewDuplicateVoteError()
	}

	// Step 4: Load the review, reading the counters we will bump
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewmodel.ErrReviewNotFound) {
			return model.NewReviewNotFoundError()
		}
		return fmt.Errorf("failed to load review: %w", err)
	}

	// Step 5: Insert the vote record
	vote := &model.Vote{
		ID:        uuid.New(),
		ReviewID:  reviewID,
		UserID:    userID,
		Kind:      model.Kind(req.Kind),
		CreatedAt: time.Now(),
	}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		if errors.Is(err, model.ErrDuplicateVote) {
			return model.NewDuplicateVoteError()
		}
		return fmt.Errorf("failed to record vote: %w", err)
	}

	// Step 6: Bump the matching counter using the counts read above.
	// Concurrent votes may briefly leave the counter behind the vote
	// rows; the vote record itself is never lost.
	helpful := review.HelpfulCount
	unhelpful := review.UnhelpfulCount
	if vote.Kind == model.KindHelpful {
		helpful++
	} else {
		unhelpful++
	}
	if err := s.reviewRepo.UpdateVoteCounts(ctx, reviewID, helpful, unhelpful); err != nil {
		return fmt.Errorf("failed to update vote counts: %w", err)
	}

	return nil
}
