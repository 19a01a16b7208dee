package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastehub-backend/internal/domains/comment/model"
	commentrepo "tastehub-backend/internal/domains/comment/repository"
	"tastehub-backend/internal/domains/rating"
	reviewmodel "tastehub-backend/internal/domains/review/model"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
)

// =====================================================
// IN-MEMORY FAKES
// =====================================================

type fakeCommentRepo struct {
	comments map[uuid.UUID]*model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uuid.UUID]*model.Comment)}
}

func (f *fakeCommentRepo) Create(_ context.Context, comment *model.Comment) error {
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeCommentRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	copied := *comment
	return &copied, nil
}

func (f *fakeCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.comments, id)
	return nil
}

func (f *fakeCommentRepo) ListApprovedByReviews(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]model.Comment, error) {
	return nil, nil
}

func (f *fakeCommentRepo) SetApproved(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	comment.Approved = true
	return nil
}

func (f *fakeCommentRepo) SetReported(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	comment.Reported = true
	return nil
}

func (f *fakeCommentRepo) ClearReported(_ context.Context, id uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok {
		return model.ErrCommentNotFound
	}
	comment.Reported = false
	return nil
}

func (f *fakeCommentRepo) ListPending(_ context.Context) ([]commentrepo.ModerationItem, error) {
	return nil, nil
}

func (f *fakeCommentRepo) ListReported(_ context.Context) ([]commentrepo.ModerationItem, error) {
	return nil, nil
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

func (f *fakeReviewRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

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
func (f *fakeReviewRepo) UpdateVoteCounts(_ context.Context, _ uuid.UUID, _, _ int) error {
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

func TestSubmitComment_CreatesPending(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewCommentService(commentRepo, reviewRepo)

	review := &reviewmodel.Review{ID: uuid.New(), RestaurantID: uuid.New(), UserID: uuid.New(), Comment: "parent", Rating: 4, Approved: true, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	comment, err := svc.SubmitComment(context.Background(), review.ID, uuid.New(), model.CreateCommentRequest{
		Comment: "  Totally agree  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Totally agree", comment.Comment)
	assert.False(t, comment.Approved, "new comments start pending")
	assert.False(t, comment.Reported)
}

func TestSubmitComment_PendingParentAccepted(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	reviewRepo := newFakeReviewRepo()
	svc := NewCommentService(commentRepo, reviewRepo)

	// The parent's own moderation state does not gate comment submission
	review := &reviewmodel.Review{ID: uuid.New(), RestaurantID: uuid.New(), UserID: uuid.New(), Comment: "parent", Rating: 2, Approved: false, CreatedAt: time.Now()}
	require.NoError(t, reviewRepo.Create(context.Background(), review))

	_, err := svc.SubmitComment(context.Background(), review.ID, uuid.New(), model.CreateCommentRequest{Comment: "early"})
	assert.NoError(t, err)
}

func TestSubmitComment_MissingParent(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo(), newFakeReviewRepo())

	_, err := svc.SubmitComment(context.Background(), uuid.New(), uuid.New(), model.CreateCommentRequest{Comment: "hi"})

	var commentErr *model.CommentError
	require.ErrorAs(t, err, &commentErr)
	assert.Equal(t, model.ErrCodeReviewNotFound, commentErr.Code)
}

func TestSubmitComment_Anonymous(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo(), newFakeReviewRepo())

	_, err := svc.SubmitComment(context.Background(), uuid.New(), uuid.Nil, model.CreateCommentRequest{Comment: "hi"})

	var commentErr *model.CommentError
	require.ErrorAs(t, err, &commentErr)
	assert.Equal(t, model.ErrCodeNotSignedIn, commentErr.Code)
}

func TestSubmitComment_BlankText(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	svc := NewCommentService(commentRepo, newFakeReviewRepo())

	_, err := svc.SubmitComment(context.Background(), uuid.New(), uuid.New(), model.CreateCommentRequest{Comment: " \t "})

	var commentErr *model.CommentError
	require.ErrorAs(t, err, &commentErr)
	assert.Equal(t, model.ErrCodeValidation, commentErr.Code)
	assert.Empty(t, commentRepo.comments)
}

func TestReportComment_SetsFlag(t *testing.T) {
	commentRepo := newFakeCommentRepo()
	svc := NewCommentService(commentRepo, newFakeReviewRepo())

	comment := &model.Comment{ID: uuid.New(), ReviewID: uuid.New(), UserID: uuid.New(), Comment: "hm", Approved: true, CreatedAt: time.Now()}
	require.NoError(t, commentRepo.Create(context.Background(), comment))

	require.NoError(t, svc.Report(context.Background(), comment.ID, uuid.New()))

	stored, err := commentRepo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.True(t, stored.Reported)
	assert.True(t, stored.Approved, "reporting never hides approved content")
}

func TestReportComment_Missing(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo(), newFakeReviewRepo())

	err := svc.Report(context.Background(), uuid.New(), uuid.New())

	var commentErr *model.CommentError
	require.ErrorAs(t, err, &commentErr)
	assert.Equal(t, model.ErrCodeCommentNotFound, commentErr.Code)
}
