package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastehub-backend/internal/domains/rating"
	reviewmodel "tastehub-backend/internal/domains/review/model"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
	"tastehub-backend/internal/domains/vote/model"
)

// =====================================================
// IN-MEMORY FAKES
// =====================================================

type fakeVoteRepo struct {
	votes map[string]*model.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]*model.Vote)}
}

func voteKey(reviewID, userID uuid.UUID) string {
	return reviewID.String() + "/" + userID.String()
}

func (f *fakeVoteRepo) Create(_ context.Context, vote *model.Vote) error {
	key := voteKey(vote.ReviewID, vote.UserID)
	if _, ok := f.votes[key]; ok {
		return model.ErrDuplicateVote
	}
	stored := *vote
	f.votes[key] = &stored
	return nil
}

func (f *fakeVoteRepo) HasVoted(_ context.Context, reviewID, userID uuid.UUID) (bool, error) {
	_, ok := f.votes[voteKey(reviewID, userID)]
	return ok, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*reviewmodel.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*reviewmodel.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *reviewmodel.Review) error {
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*reviewmodel.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, reviewmodel.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListApprovedByRestaurant(_ context.Context, _ uuid.UUID, _ string) ([]*reviewmodel.Review, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ListRatingsByRestaurant(_ context.Context, _ uuid.UUID) ([]rating.ReviewRating, error) {
	return nil, nil
}

func (f *fakeReviewRepo) SetApproved(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeReviewRepo) SetReported(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeReviewRepo) ClearReported(_ context.Context, _ uuid.UUID) error { return nil }

func (f *fakeReviewRepo) SetResponse(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func (f *fakeReviewRepo) UpdateVoteCounts(_ context.Context, id uuid.UUID, helpful, unhelpful int) error {
	review, ok := f.reviews[id]
	if !ok {
		return reviewmodel.ErrReviewNotFound
	}
	review.HelpfulCount = helpful
	review.UnhelpfulCount = unhelpful
	return nil
}

func (f *fakeReviewRepo) ListPending(_ context.Context) ([]reviewrepo.ModerationItem, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ListReported(_ context.Context) ([]reviewrepo.ModerationItem, error) {
	return nil, nil
}

func (f *fakeReviewRepo) ListApproved(_ context.Context) ([]reviewrepo.ModerationItem, error) {
	return nil, nil
}

// =====================================================
// TESTS
// =====================================================

func seedReview(t *testing.T, repo *fakeReviewRepo) *reviewmodel.Review {
	t.Helper()
	review := &reviewmodel.Review{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		UserID:       uuid.New(),
		Comment:      "solid",
		Rating:       4,
		Approved:     true,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), review))
	return review
}

func TestCastVote_Helpful(t *testing.T) {
	voteRepo := newFakeVoteRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewVoteService(voteRepo, reviewRepo)

	review := seedReview(t, reviewRepo)

	err := svc.CastVote(context.Background(), review.ID, uuid.New(), model.CastVoteRequest{Kind: "helpful"})
	require.NoError(t, err)

	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.HelpfulCount)
	assert.Equal(t, 0, stored.UnhelpfulCount)
}

func TestCastVote_Unhelpful(t *testing.T) {
	voteRepo := newFakeVoteRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewVoteService(voteRepo, reviewRepo)

	review := seedReview(t, reviewRepo)

	err := svc.CastVote(context.Background(), review.ID, uuid.New(), model.CastVoteRequest{Kind: "unhelpful"})
	require.NoError(t, err)

	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.HelpfulCount)
	assert.Equal(t, 1, stored.UnhelpfulCount)
}

func TestCastVote_DuplicateRejectedAcrossKinds(t *testing.T) {
	voteRepo := newFakeVoteRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewVoteService(voteRepo, reviewRepo)

	review := seedReview(t, reviewRepo)
	userID := uuid.New()

	require.NoError(t, svc.CastVote(context.Background(), review.ID, userID, model.CastVoteRequest{Kind: "helpful"}))

	// Same kind again
	err := svc.CastVote(context.Background(), review.ID, userID, model.CastVoteRequest{Kind: "helpful"})
	var voteErr *model.VoteError
	require.ErrorAs(t, err, &voteErr)
	assert.Equal(t, model.ErrCodeDuplicateVote, voteErr.Code)

	// Switching kind does not help
	err = svc.CastVote(context.Background(), review.ID, userID, model.CastVoteRequest{Kind: "unhelpful"})
	require.ErrorAs(t, err, &voteErr)
	assert.Equal(t, model.ErrCodeDuplicateVote, voteErr.Code)

	// The first vote stands
	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.HelpfulCount)
	assert.Equal(t, 0, stored.UnhelpfulCount)
}

func TestCastVote_DifferentUsersBothCount(t *testing.T) {
	voteRepo := newFakeVoteRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewVoteService(voteRepo, reviewRepo)

	review := seedReview(t, reviewRepo)

	require.NoError(t, svc.CastVote(context.Background(), review.ID, uuid.New(), model.CastVoteRequest{Kind: "helpful"}))
	require.NoError(t, svc.CastVote(context.Background(), review.ID, uuid.New(), model.CastVoteRequest{Kind: "helpful"}))

	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.HelpfulCount)
}

func TestCastVote_Anonymous(t *testing.T) {
	svc := NewVoteService(newFakeVoteRepo(), newFakeReviewRepo())

	err := svc.CastVote(context.Background(), uuid.New(), uuid.Nil, model.CastVoteRequest{Kind: "helpful"})

	var voteErr *model.VoteError
	require.ErrorAs(t, err, &voteErr)
	assert.Equal(t, model.ErrCodeNotSignedIn, voteErr.Code)
}

func TestCastVote_InvalidKind(t *testing.T) {
	svc := NewVoteService(newFakeVoteRepo(), newFakeReviewRepo())

	err := svc.CastVote(context.Background(), uuid.New(), uuid.New(), model.CastVoteRequest{Kind: "meh"})

	var voteErr *model.VoteError
	require.ErrorAs(t, err, &voteErr)
	assert.Equal(t, model.ErrCodeValidation, voteErr.Code)
}

func TestCastVote_MissingReview(t *testing.T) {
	svc := NewVoteService(newFakeVoteRepo(), newFakeReviewRepo())

	err := svc.CastVote(context.Background(), uuid.New(), uuid.New(), model.CastVoteRequest{Kind: "helpful"})

	var voteErr *model.VoteError
	require.ErrorAs(t, err, &voteErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, voteErr.Code)
}
