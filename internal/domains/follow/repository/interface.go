package repository

import (
	"context"

	"github.com/google/uuid"
)

// FollowRepository is the data-access contract for the follow graph.
type FollowRepository interface {
	// Create inserts the edge if absent. Returns whether a new edge
	// was created; a duplicate reports false with no error.
	Create(ctx context.Context, userID, authorID uuid.UUID) (bool, error)

	// Delete removes the edge if present. Returns whether an edge
	// was deleted; a missing edge reports false with no error.
	Delete(ctx context.Context, userID, authorID uuid.UUID) (bool, error)

	Exists(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowing(ctx context.Context, userID uuid.UUID) (int, error)
}
