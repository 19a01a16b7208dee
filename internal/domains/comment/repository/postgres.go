package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastehub-backend/internal/domains/comment/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (
			id, review_id, user_id,
			comment, approved, reported,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.ReviewID,
		comment.UserID,
		comment.Comment,
		comment.Approved,
		comment.Reported,
		comment.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT id, review_id, user_id, comment, approved, reported, created_at
		FROM comments
		WHERE id = $1
	`

	comment := &model.Comment{}

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.ReviewID,
		&comment.UserID,
		&comment.Comment,
		&comment.Approved,
		&comment.Reported,
		&comment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

// =====================================================
// PUBLIC LISTING
// =====================================================

func (r *postgresCommentRepository) ListApprovedByReviews(
	ctx context.Context,
	reviewIDs []uuid.UUID,
) (map[uuid.UUID][]model.Comment, error) {
	grouped := make(map[uuid.UUID][]model.Comment, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT c.id, c.review_id, c.user_id, c.comment, c.approved, c.reported, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.review_id = ANY($1) AND c.approved = true
		ORDER BY c.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var comment model.Comment

		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.UserID,
			&comment.Comment,
			&comment.Approved,
			&comment.Reported,
			&comment.CreatedAt,
			&comment.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}

		grouped[comment.ReviewID] = append(grouped[comment.ReviewID], comment)
	}

	return grouped, nil
}

// =====================================================
// MODERATION FLAGS
// =====================================================

func (r *postgresCommentRepository) SetApproved(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, `UPDATE comments SET approved = true WHERE id = $1`)
}

func (r *postgresCommentRepository) SetReported(ctx context.Context, id uuid.UUID) error {
	// Idempotent by construction
	return r.setFlag(ctx, id, `UPDATE comments SET reported = true WHERE id = $1`)
}

func (r *postgresCommentRepository) ClearReported(ctx context.Context, id uuid.UUID) error {
	return r.setFlag(ctx, id, `UPDATE comments SET reported = false WHERE id = $1`)
}

func (r *postgresCommentRepository) setFlag(ctx context.Context, id uuid.UUID, query string) error {
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

// =====================================================
// MODERATION QUEUES
// =====================================================

func (r *postgresCommentRepository) ListPending(ctx context.Context) ([]ModerationItem, error) {
	return r.listForModeration(ctx, `c.approved = false`)
}

func (r *postgresCommentRepository) ListReported(ctx context.Context) ([]ModerationItem, error) {
	return r.listForModeration(ctx, `c.reported = true`)
}

func (r *postgresCommentRepository) listForModeration(ctx context.Context, where string) ([]ModerationItem, error) {
	// Restaurant name reached through the parent review
	query := `
		SELECT
			c.id, c.review_id, c.user_id,
			c.comment, c.approved, c.reported,
			c.created_at,
			rest.name
		FROM comments c
		JOIN reviews r ON r.id = c.review_id
		JOIN restaurants rest ON rest.id = r.restaurant_id
		WHERE ` + where + `
		ORDER BY c.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for moderation: %w", err)
	}
	defer rows.Close()

	var items []ModerationItem
	for rows.Next() {
		var item ModerationItem

		err := rows.Scan(
			&item.Comment.ID,
			&item.Comment.ReviewID,
			&item.Comment.UserID,
			&item.Comment.Comment,
			&item.Comment.Approved,
			&item.Comment.Reported,
			&item.Comment.CreatedAt,
			&item.RestaurantName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moderation item: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
