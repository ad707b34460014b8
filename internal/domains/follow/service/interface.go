package service

import (
	"context"

	"github.com/google/uuid"
)

// ServiceInterface is the follow-graph business logic contract.
// Follow and Unfollow are idempotent: a duplicate follow and a
// missing unfollow are both silent no-ops.
type ServiceInterface interface {
	Follow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error
	Unfollow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error
	IsFollowing(ctx context.Context, subscriberID, authorID uuid.UUID) (bool, error)
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
}

// UserResolver maps a username to a user id.
// Implemented by the user domain.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (uuid.UUID, error)
}
