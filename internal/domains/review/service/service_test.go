package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commentmodel "tastehub-backend/internal/domains/comment/model"
	commentrepo "tastehub-backend/internal/domains/comment/repository"
	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/review/model"
	"tastehub-backend/internal/domains/review/repository"
)

// =====================================================
// IN-MEMORY FAKES
// =====================================================

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*model.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*model.Review)}
}

func (f *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, model.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return model.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewRepo) ListApprovedByRestaurant(_ context.Context, restaurantID uuid.UUID, _ string) ([]*model.Review, error) {
	out := make([]*model.Review, 0)
	for _, review := range f.reviews {
		if review.RestaurantID == restaurantID && review.Approved {
			copied := *review
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListRatingsByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]rating.ReviewRating, error) {
	out := make([]rating.ReviewRating, 0)
	for _, review := range f.reviews {
		if review.RestaurantID == restaurantID {
			out = append(out, rating.ReviewRating{Rating: review.Rating, Approved: review.Approved})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) SetApproved(_ context.Context, id uuid.UUID) error {
	review, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	review.Approved = true
	return nil
}

func (f *fakeReviewRepo) SetReported(_ context.Context, id uuid.UUID) error {
	review, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	review.Reported = true
	return nil
}

func (f *fakeReviewRepo) ClearReported(_ context.Context, id uuid.UUID) error {
	review, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	review.Reported = false
	return nil
}

func (f *fakeReviewRepo) SetResponse(_ context.Context, id uuid.UUID, response string) error {
	review, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	review.Response = &response
	return nil
}

func (f *fakeReviewRepo) UpdateVoteCounts(_ context.Context, id uuid.UUID, helpful, unhelpful int) error {
	review, ok := f.reviews[id]
	if !ok {
		return model.ErrReviewNotFound
	}
	review.HelpfulCount = helpful
	review.UnhelpfulCount = unhelpful
	return nil
}

func (f *fakeReviewRepo) ListPending(_ context.Context) ([]repository.ModerationItem, error) {
	return f.list(func(r *model.Review) bool { return !r.Approved })
}

func (f *fakeReviewRepo) ListReported(_ context.Context) ([]repository.ModerationItem, error) {
	return f.list(func(r *model.Review) bool { return r.Reported })
}

func (f *fakeReviewRepo) ListApproved(_ context.Context) ([]repository.ModerationItem, error) {
	return f.list(func(r *model.Review) bool { return r.Approved })
}

func (f *fakeReviewRepo) list(match func(*model.Review) bool) ([]repository.ModerationItem, error) {
	out := make([]repository.ModerationItem, 0)
	for _, review := range f.reviews {
		if match(review) {
			out = append(out, repository.ModerationItem{Review: *review})
		}
	}
	return out, nil
}

type fakeCommentRepo struct {
	comments map[uuid.UUID]*commentmodel.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*commentmodel.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *commentmodel.Comment) error {
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*commentmodel.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, commentmodel.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.comments[id]; !ok {
		return commentmodel.ErrCommentNotFound
	}
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) ListApprovedByReviews(_ context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]commentmodel.Comment, error) {
	wanted := make(map[uuid.UUID]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}

	out := make(map[uuid.UUID][]commentmodel.Comment)
	for _, comment := range f.comments {
		if wanted[comment.ReviewID] && comment.Approved {
			out[comment.ReviewID] = append(out[comment.ReviewID], *comment)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) SetApproved(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return commentmodel.ErrCommentNotFound
	}
	comment.Approved = true
	return nil
}

func (f *fakeCommentRepo) SetReported(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return commentmodel.ErrCommentNotFound
	}
	comment.Reported = true
	return nil
}

func (f *fakeCommentRepo) ClearReported(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return commentmodel.ErrCommentNotFound
	}
	comment.Reported = false
	return nil
}

func (f *fakeCommentRepo) ListPending(_ context.Context) ([]commentrepo.ModerationItem, error) {
	out := make([]commentrepo.ModerationItem, 0)
	for _, comment := range f.comments {
		if !comment.Approved {
			out = append(out, commentrepo.ModerationItem{Comment: *comment})
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) ListReported(_ context.Context) ([]commentrepo.ModerationItem, error) {
	out := make([]commentrepo.ModerationItem, 0)
	for _, comment := range f.comments {
		if comment.Reported {
			out = append(out, commentrepo.ModerationItem{Comment: *comment})
		}
	}
	return out, nil
}

// =====================================================
// TESTS
// =====================================================

func TestSubmitReview_CreatesPending(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	restaurantID := uuid.New()
	userID := uuid.New()

	review, err := svc.SubmitReview(context.Background(), restaurantID, userID, model.CreateReviewRequest{
		Comment: "  Excellent noodles  ",
		Rating:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Excellent noodles", review.Comment)
	assert.Equal(t, 5, review.Rating)
	assert.False(t, review.Approved, "new reviews start pending")
	assert.False(t, review.Reported)
	assert.Equal(t, 0, review.HelpfulCount)
	assert.Equal(t, 0, review.UnhelpfulCount)

	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}

func TestSubmitReview_Anonymous(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	_, err := svc.SubmitReview(context.Background(), uuid.New(), uuid.Nil, model.CreateReviewRequest{
		Comment: "ok",
		Rating:  3,
	})

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeNotSignedIn, reviewErr.Code)
	assert.Empty(t, reviewRepo.reviews, "nothing stored on rejection")
}

func TestSubmitReview_InvalidInputStoresNothing(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	_, err := svc.SubmitReview(context.Background(), uuid.New(), uuid.New(), model.CreateReviewRequest{
		Comment: "   ",
		Rating:  3,
	})

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeValidation, reviewErr.Code)
	assert.Empty(t, reviewRepo.reviews)
}

func TestListVisible_OnlyApprovedWithComments(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	commentRepo := newFakeCommentRepo()
	svc := NewReviewService(reviewRepo, commentRepo)

	restaurantID := uuid.New()

	approved := &model.Review{ID: uuid.New(), RestaurantID: restaurantID, UserID: uuid.New(), Comment: "good", Rating: 4, Approved: true, CreatedAt: time.Now()}
	pending := &model.Review{ID: uuid.New(), RestaurantID: restaurantID, UserID: uuid.New(), Comment: "meh", Rating: 2, Approved: false, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), approved))
	require.NoError(t, reviewRepo.Create(context.Background(), pending))

	visibleComment := &commentmodel.Comment{ID: uuid.New(), ReviewID: approved.ID, UserID: uuid.New(), Comment: "agreed", Approved: true}
	hiddenComment := &commentmodel.Comment{ID: uuid.New(), ReviewID: approved.ID, UserID: uuid.New(), Comment: "spam", Approved: false}
	require.NoError(t, commentRepo.Create(context.Background(), visibleComment))
	require.NoError(t, commentRepo.Create(context.Background(), hiddenComment))

	responses, err := svc.ListVisible(context.Background(), restaurantID, model.ListReviewsRequest{})
	require.NoError(t, err)
	require.Len(t, responses, 1)

	assert.Equal(t, approved.ID, responses[0].ID)
	require.Len(t, responses[0].Comments, 1)
	assert.Equal(t, "agreed", responses[0].Comments[0].Comment)
}

func TestListVisible_ReportedApprovedStaysVisible(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	restaurantID := uuid.New()
	review := &model.Review{ID: uuid.New(), RestaurantID: restaurantID, UserID: uuid.New(), Comment: "fine", Rating: 3, Approved: true, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	require.NoError(t, svc.Report(context.Background(), review.ID, uuid.New()))

	responses, err := svc.ListVisible(context.Background(), restaurantID, model.ListReviewsRequest{})
	require.NoError(t, err)
	require.Len(t, responses, 1, "reporting never hides approved content")
	assert.True(t, responses[0].Reported)
}

func TestDeleteOwn_AuthorOnly(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	author := uuid.New()
	review := &model.Review{ID: uuid.New(), RestaurantID: uuid.New(), UserID: author, Comment: "mine", Rating: 4, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	// A different user cannot delete it
	err := svc.DeleteOwn(context.Background(), review.ID, uuid.New())
	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeNotAuthor, reviewErr.Code)

	_, err = reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err, "review survives the failed attempt")

	// The author can
	require.NoError(t, svc.DeleteOwn(context.Background(), review.ID, author))
	_, err = reviewRepo.GetByID(context.Background(), review.ID)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

func TestReport_MissingReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), newFakeCommentRepo())

	err := svc.Report(context.Background(), uuid.New(), uuid.New())

	var reviewErr *model.ReviewError
	require.ErrorAs(t, err, &reviewErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, reviewErr.Code)
}

func TestReport_Idempotent(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	svc := NewReviewService(reviewRepo, newFakeCommentRepo())

	review := &model.Review{ID: uuid.New(), RestaurantID: uuid.New(), UserID: uuid.New(), Comment: "x", Rating: 1, Approved: true, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	require.NoError(t, svc.Report(context.Background(), review.ID, uuid.New()))
	require.NoError(t, svc.Report(context.Background(), review.ID, uuid.New()))

	stored, err := reviewRepo.GetByID(context.Background(), review.ID)
	require.NoError(t, err)
	assert.True(t, stored.Reported)
}
