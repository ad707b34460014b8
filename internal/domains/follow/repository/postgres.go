package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresFollowRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFollowRepository(pool *pgxpool.Pool) FollowRepository {
	return &postgresFollowRepository{pool: pool}
}

func (r *postgresFollowRepository) Create(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	// The unique (user_id, author_id) index resolves races between
	// concurrent duplicate follows; ON CONFLICT turns the loser into
	// a no-op instead of an error.
	query := `
		INSERT INTO follows (user_id, author_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	result, err := r.pool.Exec(ctx, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to create follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *postgresFollowRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	result, err := r.pool.Exec(ctx, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("failed to delete follow: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *postgresFollowRepository) Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE user_id = $1 AND author_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, authorID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check follow: %w", err)
	}

	return exists, nil
}

func (r *postgresFollowRepository) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE author_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count followers: %w", err)
	}

	return count, nil
}

func (r *postgresFollowRepository) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM follows WHERE user_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count following: %w", err)
	}

	return count, nil
}
