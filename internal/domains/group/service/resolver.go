package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/group/model"
	"yatube-backend/internal/domains/group/repository"
)

// SlugResolver adapts the group repository for other domains that only
// need slug and id lookups.
type SlugResolver struct {
	repo repository.GroupRepository
}

func NewSlugResolver(repo repository.GroupRepository) *SlugResolver {
	return &SlugResolver{repo: repo}
}

func (r *SlugResolver) ResolveSlug(ctx context.Context, slug string) (uuid.UUID, error) {
	g, err := r.repo.GetBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, err
	}
	return g.ID, nil
}

func (r *SlugResolver) GroupExists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGroupNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
