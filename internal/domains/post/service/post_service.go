package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	groupmodel "yatube-backend/internal/domains/group/model"
	"yatube-backend/internal/domains/post/model"
	"yatube-backend/internal/domains/post/repository"
	usermodel "yatube-backend/internal/domains/user/model"
	"yatube-backend/pkg/paginator"
)

type postService struct {
	repo    repository.PostRepository
	groups  GroupResolver
	users   UserResolver
	follows FollowCounter
}

func NewPostService(repo repository.PostRepository, groups GroupResolver, users UserResolver, follows FollowCounter) ServiceInterface {
	return &postService{repo: repo, groups: groups, users: users, follows: follows}
}

// =====================================================
// POST CRUD
// =====================================================

func (s *postService) CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.Post, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Resolve the optional group
	if req.GroupID != nil {
		exists, err := s.groups.GroupExists(ctx, *req.GroupID)
		if err != nil {
			return nil, fmt.Errorf("check group: %w", err)
		}
		if !exists {
			return nil, model.ErrGroupNotFound
		}
	}

	// Step 3: Persist; the author is always the caller
	p := &model.Post{
		Text:     req.Text,
		AuthorID: authorID,
		GroupID:  req.GroupID,
		ImageURL: req.ImageURL,
	}

	if err := s.repo.CreatePost(ctx, p); err != nil {
		return nil, err
	}

	// Re-read to pick up the joined author/group columns
	return s.repo.GetPostByID(ctx, p.ID)
}

func (s *postService) UpdatePost(ctx context.Context, callerID uuid.UUID, postID int64, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Authorship gate: a non-author edit mutates nothing
	if p.AuthorID != callerID {
		return nil, model.ErrNotAuthor
	}

	if req.GroupID != nil {
		exists, err := s.groups.GroupExists(ctx, *req.GroupID)
		if err != nil {
			return nil, fmt.Errorf("check group: %w", err)
		}
		if !exists {
			return nil, model.ErrGroupNotFound
		}
	}

	p.Text = req.Text
	p.GroupID = req.GroupID
	p.ImageURL = req.ImageURL

	if err := s.repo.UpdatePost(ctx, p); err != nil {
		return nil, err
	}

	return s.repo.GetPostByID(ctx, postID)
}

func (s *postService) DeletePost(ctx context.Context, callerID uuid.UUID, postID int64) error {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return err
	}

	if p.AuthorID != callerID {
		return model.ErrNotAuthor
	}

	return s.repo.DeletePost(ctx, postID)
}

func (s *postService) GetPostDetail(ctx context.Context, postID int64) (*model.PostDetailResponse, error) {
	p, err := s.repo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorPosts, err := s.repo.CountByAuthor(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	followers, _, err := s.follows.Counts(ctx, p.AuthorID)
	if err != nil {
		return nil, err
	}

	return &model.PostDetailResponse{
		Post:            p,
		Comments:        comments,
		AuthorPostCount: authorPosts,
		AuthorFollowers: followers,
	}, nil
}

// =====================================================
// FEED QUERIES
// =====================================================

func (s *postService) GlobalFeed(ctx context.Context, p paginator.Params) ([]*model.Post, paginator.Meta, error) {
	posts, total, err := s.repo.ListAll(ctx, p.Limit, p.Offset())
	if err != nil {
		return nil, paginator.Meta{}, err
	}

	return posts, paginator.BuildMeta(p, total), nil
}

func (s *postService) GroupFeed(ctx context.Context, slug string, p paginator.Params) ([]*model.Post, paginator.Meta, error) {
	groupID, err := s.groups.ResolveSlug(ctx, slug)
	if err != nil {
		if errors.Is(err, groupmodel.ErrGroupNotFound) {
			return nil, paginator.Meta{}, model.ErrGroupNotFound
		}
		return nil, paginator.Meta{}, fmt.Errorf("resolve group: %w", err)
	}

	posts, total, err := s.repo.ListByGroup(ctx, groupID, p.Limit, p.Offset())
	if err != nil {
		return nil, paginator.Meta{}, err
	}

	return posts, paginator.BuildMeta(p, total), nil
}

func (s *postService) ProfileFeed(ctx context.Context, username string, p paginator.Params) ([]*model.Post, paginator.Meta, error) {
	authorID, err := s.users.ResolveUsername(ctx, username)
	if err != nil {
		if errors.Is(err, usermodel.ErrUserNotFound) {
			return nil, paginator.Meta{}, model.ErrUserNotFound
		}
		return nil, paginator.Meta{}, fmt.Errorf("resolve author: %w", err)
	}

	posts, total, err := s.repo.ListByAuthor(ctx, authorID, p.Limit, p.Offset())
	if err != nil {
		return nil, paginator.Meta{}, err
	}

	return posts, paginator.BuildMeta(p, total), nil
}

func (s *postService) FollowFeed(ctx context.Context, subscriberID uuid.UUID, p paginator.Params) ([]*model.Post, paginator.Meta, error) {
	posts, total, err := s.repo.ListFollowed(ctx, subscriberID, p.Limit, p.Offset())
	if err != nil {
		return nil, paginator.Meta{}, err
	}

	return posts, paginator.BuildMeta(p, total), nil
}

// =====================================================
// COMMENTS
// =====================================================

func (s *postService) AddComment(ctx context.Context, postID int64, authorID uuid.UUID, req model.AddCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The post must exist; comments on deleted posts are a 404
	if _, err := s.repo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	c := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     req.Text,
	}

	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *postService) ListComments(ctx context.Context, postID int64) ([]*model.Comment, error) {
	if _, err := s.repo.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.repo.ListComments(ctx, postID)
}

func (s *postService) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	return s.repo.CountByAuthor(ctx, authorID)
}
