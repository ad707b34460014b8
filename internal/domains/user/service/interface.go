package service

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/user/model"
)

// ServiceInterface is the user domain business logic contract.
type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.UserDTO, error)

	// GetProfile builds the public author page. viewerID is uuid.Nil
	// for anonymous callers; is_following is false in that case.
	GetProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ProfileResponse, error)
}

// FollowInfo is the slice of the follow domain the profile page needs.
type FollowInfo interface {
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
	IsFollowing(ctx context.Context, subscriberID, authorID uuid.UUID) (bool, error)
}

// PostCounter is the slice of the post domain the profile page needs.
type PostCounter interface {
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}
