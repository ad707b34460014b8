package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/follow/model"
	"yatube-backend/internal/domains/follow/repository"
	usermodel "yatube-backend/internal/domains/user/model"
	"yatube-backend/pkg/cache"
	"yatube-backend/pkg/logger"
)

const (
	countsCachePrefix = "follow:counts:"
	countsCacheTTL    = time.Minute
)

type followService struct {
	repo  repository.FollowRepository
	users UserResolver
	cache cache.Cache
}

func NewFollowService(repo repository.FollowRepository, users UserResolver, c cache.Cache) ServiceInterface {
	return &followService{repo: repo, users: users, cache: c}
}

func (s *followService) Follow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error {
	authorID, err := s.users.ResolveUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("resolve author: %w", err)
	}

	if subscriberID == authorID {
		return model.ErrSelfFollow
	}

	created, err := s.repo.Create(ctx, subscriberID, authorID)
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}

	// Duplicate follow: edge already existed, nothing to invalidate
	if created {
		s.invalidateCounts(ctx, subscriberID, authorID)
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, subscriberID uuid.UUID, authorUsername string) error {
	authorID, err := s.users.ResolveUsername(ctx, authorUsername)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return model.ErrAuthorNotFound
		}
		return fmt.Errorf("resolve author: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, subscriberID, authorID)
	if err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}

	// Unfollowing an author that was never followed is a no-op
	if deleted {
		s.invalidateCounts(ctx, subscriberID, authorID)
	}

	return nil
}

func (s *followService) IsFollowing(ctx context.Context, subscriberID, authorID uuid.UUID) (bool, error) {
	return s.repo.Exists(ctx, subscriberID, authorID)
}

func (s *followService) Counts(ctx context.Context, userID uuid.UUID) (int, int, error) {
	cacheKey := countsCachePrefix + userID.String()

	var cached model.Counts
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached.Followers, cached.Following, nil
	}

	followers, err := s.repo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	following, err := s.repo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	counts := model.Counts{Followers: followers, Following: following}
	if err := s.cache.Set(ctx, cacheKey, counts, countsCacheTTL); err != nil {
		logger.Error("cache follow counts", err) // non-fatal
	}

	return followers, following, nil
}

// invalidateCounts drops cached counts for both ends of the edge.
func (s *followService) invalidateCounts(ctx context.Context, subscriberID, authorID uuid.UUID) {
	err := s.cache.Delete(ctx,
		countsCachePrefix+subscriberID.String(),
		countsCachePrefix+authorID.String(),
	)
	if err != nil {
		logger.Error("invalidate follow counts", err)
	}
}
