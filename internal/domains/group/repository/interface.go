package repository

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/group/model"
)

// GroupRepository is the data-access contract for groups.
type GroupRepository interface {
	Create(ctx context.Context, g *model.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	List(ctx context.Context, limit, offset int) ([]*model.Group, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
