package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"yatube-backend/internal/domains/user/model"
	"yatube-backend/internal/domains/user/repository"
	"yatube-backend/pkg/jwt"
)

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
	follows    FollowInfo
	posts      PostCounter
}

func NewUserService(
	repo repository.UserRepository,
	jwtManager *jwt.Manager,
	follows FollowInfo,
	posts PostCounter,
) ServiceInterface {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
		follows:    follows,
		posts:      posts,
	}
}

// ========================================
// AUTHENTICATION
// ========================================

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserDTO, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Uniqueness pre-checks (the DB constraints are the
	// authority; these produce friendlier errors for the common case)
	taken, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username exists: %w", err)
	}
	if taken {
		return nil, model.ErrUsernameTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if taken {
		return nil, model.ErrEmailTaken
	}

	// Step 3: Hash password (cost 12)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Step 4: Persist
	newUser := &model.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Bio:          optionalString(req.Bio),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	dto := newUser.ToDTO()
	return &dto, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the email exists
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *userService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrUnauthorized
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrUnauthorized
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, model.ErrUnauthorized
	}

	return s.issueTokens(u)
}

func (s *userService) issueTokens(u *model.User) (*model.LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &model.LoginResponse{
		User:         u.ToDTO(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ========================================
// LOOKUPS
// ========================================

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.UserDTO, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) GetProfile(ctx context.Context, username string, viewerID uuid.UUID) (*model.ProfileResponse, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	followers, following, err := s.follows.Counts(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("follow counts: %w", err)
	}

	postCount, err := s.posts.CountByAuthor(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("post count: %w", err)
	}

	isFollowing := false
	if viewerID != uuid.Nil && viewerID != u.ID {
		isFollowing, err = s.follows.IsFollowing(ctx, viewerID, u.ID)
		if err != nil {
			return nil, fmt.Errorf("is following: %w", err)
		}
	}

	return &model.ProfileResponse{
		ID:          u.ID,
		Username:    u.Username,
		Bio:         u.Bio,
		PostCount:   postCount,
		Followers:   followers,
		Following:   following,
		IsFollowing: isFollowing,
		CreatedAt:   u.CreatedAt,
	}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
