package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/group/model"
	"yatube-backend/internal/domains/group/repository"
	"yatube-backend/internal/shared/utils"
	"yatube-backend/pkg/cache"
	"yatube-backend/pkg/logger"
	"yatube-backend/pkg/paginator"
)

const (
	groupSlugCachePrefix = "group:slug:"
	groupCacheTTL        = 5 * time.Minute
)

type groupService struct {
	repo  repository.GroupRepository
	cache cache.Cache
}

func NewGroupService(repo repository.GroupRepository, c cache.Cache) ServiceInterface {
	return &groupService{repo: repo, cache: c}
}

func (s *groupService) CreateGroup(ctx context.Context, req model.CreateGroupRequest) (*model.Group, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the slug; derived from the title when omitted
	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Title)
	}
	if !utils.IsValidSlug(slug) {
		return nil, model.ErrInvalidSlug
	}

	// Step 3: Persist; the unique index decides slug collisions
	g := &model.Group{
		ID:          uuid.New(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *groupService) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	// Cache first; failures fall through to the database
	cacheKey := groupSlugCachePrefix + slug

	var cached model.Group
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return &cached, nil
	}

	g, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, g, groupCacheTTL); err != nil {
		logger.Error("cache group", err) // non-fatal
	}

	return g, nil
}

func (s *groupService) ListGroups(ctx context.Context, p paginator.Params) ([]*model.Group, paginator.Meta, error) {
	groups, total, err := s.repo.List(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, paginator.Meta{}, err
	}

	return groups, paginator.BuildMeta(p, total), nil
}

func (s *groupService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.cache.Delete(ctx, groupSlugCachePrefix+g.Slug); err != nil {
		logger.Error("invalidate group cache", err)
	}

	return nil
}
