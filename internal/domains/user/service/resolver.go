package service

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/user/repository"
)

// UsernameResolver adapts the user repository for other domains that
// only need to map usernames to ids.
type UsernameResolver struct {
	repo repository.UserRepository
}

func NewUsernameResolver(repo repository.UserRepository) *UsernameResolver {
	return &UsernameResolver{repo: repo}
}

func (r *UsernameResolver) ResolveUsername(ctx context.Context, username string) (uuid.UUID, error) {
	u, err := r.repo.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}
