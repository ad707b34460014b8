package service

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/group/model"
	"yatube-backend/pkg/paginator"
)

// ServiceInterface is the group domain business logic contract.
type ServiceInterface interface {
	CreateGroup(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error)
	GetBySlug(ctx context.Context, slug string) (*model.Group, error)
	ListGroups(ctx context.Context, p paginator.Params) ([]*model.Group, paginator.Meta, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
}
