package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastehub-backend/internal/domains/vote/model"
)

type postgresVoteRepository struct {
	db *pgxpool.Pool
}

// NewPostgresVoteRepository creates a PostgreSQL vote repository
func NewPostgresVoteRepository(db *pgxpool.Pool) VoteRepository {
	return &postgresVoteRepository{db: db}
}

func (r *postgresVoteRepository) Create(ctx context.Context, vote *model.Vote) error {
	query := `
		INSERT INTO review_votes (id, review_id, user_id, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		vote.ID,
		vote.ReviewID,
		vote.UserID,
		vote.Kind,
		vote.CreatedAt,
	)
	if err != nil {
		// UNIQUE(review_id, user_id) is the authoritative guard
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}

	return nil
}

func (r *postgresVoteRepository) HasVoted(ctx context.Context, reviewID, userID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM review_votes
			WHERE review_id = $1 AND user_id = $2
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, reviewID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}

	return exists, nil
}
