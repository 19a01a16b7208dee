package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, restaurant_id, user_id,
			comment, rating,
			helpful_count, unhelpful_count,
			approved, reported,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.RestaurantID,
		review.UserID,
		review.Comment,
		review.Rating,
		review.HelpfulCount,
		review.UnhelpfulCount,
		review.Approved, // always false at submission
		review.Reported,
		review.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `
		SELECT
			id, restaurant_id, user_id,
			comment, rating,
			helpful_count, unhelpful_count,
			approved, reported, response,
			created_at
		FROM reviews
		WHERE id = $1
	`

	review := &model.Review{}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.RestaurantID,
		&review.UserID,
		&review.Comment,
		&review.Rating,
		&review.HelpfulCount,
		&review.UnhelpfulCount,
		&review.Approved,
		&review.Reported,
		&review.Response,
		&review.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// =====================================================
// PUBLIC LISTING
// =====================================================

func (r *postgresReviewRepository) ListApprovedByRestaurant(
	ctx context.Context,
	restaurantID uuid.UUID,
	sort string,
) ([]*model.Review, error) {
	// Only approved reviews are visible to the public
	query := `
		SELECT
			r.id, r.restaurant_id, r.user_id,
			r.comment, r.rating,
			r.helpful_count, r.unhelpful_count,
			r.approved, r.reported, r.response,
			r.created_at,
			u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.restaurant_id = $1 AND r.approved = true
	`

	switch sort {
	case model.SortByRatingHigh:
		query += " ORDER BY r.rating DESC, r.created_at DESC"
	case model.SortByRatingLow:
		query += " ORDER BY r.rating ASC, r.created_at DESC"
	case model.SortByHelpful:
		query += " ORDER BY r.helpful_count DESC, r.created_at DESC"
	default:
		query += " ORDER BY r.created_at DESC"
	}

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		review := &model.Review{}

		err := rows.Scan(
			&review.ID,
			&review.RestaurantID,
			&review.UserID,
			&review.Comment,
			&review.Rating,
			&review.HelpfulCount,
			&review.UnhelpfulCount,
			&review.Approved,
			&review.Reported,
			&review.Response,
			&review.CreatedAt,
			&review.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}

		reviews = append(reviews, review)
	}

	return reviews, nil
}

// =====================================================
// RATING PROJECTION
// =====================================================

func (r *postgresReviewRepository) ListRatingsByRestaurant(
	ctx context.Context,
	restaurantID uuid.UUID,
) ([]rating.ReviewRating, error) {
	query := `SELECT rating, approved FROM reviews WHERE restaurant_id = $1`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []rating.ReviewRating
	for rows.Next() {
		var rr rating.ReviewRating
		if err := rows.Scan(&rr.Rating, &rr.Approved); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rr)
	}

	return ratings, nil
}

// =====================================================
// MODERATION FLAGS
// =====================================================

func (r *postgresReviewRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	// Does not touch reported: approving a reported review leaves the
	// report in place until a moderator marks it safe.
	return r.setFlag(ctx, id, `UPDATE reviews SET approved = true WHERE id = $1`)
}

func (r *postgresReviewRepository) SetReported(ctx context.Context, id uuid.UUID) error {
	// Idempotent: re-reporting an already reported review is a no-op.
	return r.setFlag(ctx, id, `UPDATE reviews SET reported = true WHERE id = $1`)
}

func (r *postgresReviewRepository) ClearReported(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, `UPDATE reviews SET reported = false WHERE id = $1`)
}

func (r *postgresReviewRepository) setFlag(ctx context.Context, id uuid.UUID, query string) error {
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) SetResponse(ctx context.Context, id uuid.UUID, response string) error {
	query := `UPDATE reviews SET response = $2 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id, response)
	if err != nil {
		return fmt.Errorf("failed to set response: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// =====================================================
// VOTE TALLIES
// =====================================================

func (r *postgresReviewRepository) UpdateVoteCounts(
	ctx context.Context,
	id uuid.UUID,
	helpful, unhelpful int,
) error {
	query := `
		UPDATE reviews
		SET helpful_count = $2, unhelpful_count = $3
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id, helpful, unhelpful)
	if err != nil {
		return fmt.Errorf("failed to update vote counts: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// =====================================================
// MODERATION QUEUES
// =====================================================

func (r *postgresReviewRepository) ListPending(ctx context.Context) ([]ModerationItem, error) {
	return r.listForModeration(ctx, `r.approved = false`)
}

func (r *postgresReviewRepository) ListReported(ctx context.Context) ([]ModerationItem, error) {
	return r.listForModeration(ctx, `r.reported = true`)
}

func (r *postgresReviewRepository) ListApproved(ctx context.Context) ([]ModerationItem, error) {
	return r.listForModeration(ctx, `r.approved = true`)
}

func (r *postgresReviewRepository) listForModeration(ctx context.Context, where string) ([]ModerationItem, error) {
	query := `
		SELECT
			r.id, r.restaurant_id, r.user_id,
			r.comment, r.rating,
			r.helpful_count, r.unhelpful_count,
			r.approved, r.reported, r.response,
			r.created_at,
			rest.name
		FROM reviews r
		JOIN restaurants rest ON rest.id = r.restaurant_id
		WHERE ` + where + `
		ORDER BY r.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for moderation: %w", err)
	}
	defer rows.Close()

	var items []ModerationItem
	for rows.Next() {
		var item ModerationItem

		err := rows.Scan(
			&item.Review.ID,
			&item.Review.RestaurantID,
			&item.Review.UserID,
			&item.Review.Comment,
			&item.Review.Rating,
			&item.Review.HelpfulCount,
			&item.Review.UnhelpfulCount,
			&item.Review.Approved,
			&item.Review.Reported,
			&item.Review.Response,
			&item.Review.CreatedAt,
			&item.RestaurantName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moderation item: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
