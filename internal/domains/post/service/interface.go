package service

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/post/model"
	"yatube-backend/pkg/paginator"
)

// ServiceInterface is the post domain business logic contract:
// post CRUD, comments, and the four feed queries.
type ServiceInterface interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, req model.CreatePostRequest) (*model.Post, error)
	UpdatePost(ctx context.Context, callerID uuid.UUID, postID int64, req model.UpdatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, callerID uuid.UUID, postID int64) error
	GetPostDetail(ctx context.Context, postID int64) (*model.PostDetailResponse, error)

	GlobalFeed(ctx context.Context, p paginator.Params) ([]*model.Post, paginator.Meta, error)
	GroupFeed(ctx context.Context, slug string, p paginator.Params) ([]*model.Post, paginator.Meta, error)
	ProfileFeed(ctx context.Context, username string, p paginator.Params) ([]*model.Post, paginator.Meta, error)
	FollowFeed(ctx context.Context, subscriberID uuid.UUID, p paginator.Params) ([]*model.Post, paginator.Meta, error)

	AddComment(ctx context.Context, postID int64, authorID uuid.UUID, req model.AddCommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]*model.Comment, error)

	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

// GroupResolver is the slice of the group domain feeds need.
type GroupResolver interface {
	ResolveSlug(ctx context.Context, slug string) (uuid.UUID, error)
	GroupExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserResolver maps a username to a user id.
type UserResolver interface {
	ResolveUsername(ctx context.Context, username string) (uuid.UUID, error)
}

// FollowCounter is the slice of the follow domain the post page needs.
type FollowCounter interface {
	Counts(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
}
