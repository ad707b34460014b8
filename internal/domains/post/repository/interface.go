package repository

import (
	"context"

	"github.com/google/uuid"

	"yatube-backend/internal/domains/post/model"
)

// PostRepository is the data-access contract for posts and comments.
// Every listing is ordered created_at DESC, id DESC so pages are
// deterministic even when timestamps collide.
type PostRepository interface {
	CreatePost(ctx context.Context, p *model.Post) error
	GetPostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, p *model.Post) error
	DeletePost(ctx context.Context, id int64) error

	// Feed queries; each returns one page plus the total match count.
	ListAll(ctx context.Context, limit, offset int) ([]*model.Post, int, error)
	ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*model.Post, int, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*model.Post, int, error)
	ListFollowed(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]*model.Post, int, error)

	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)

	CreateComment(ctx context.Context, c *model.Comment) error
	ListComments(ctx context.Context, postID int64) ([]*model.Comment, error)
}
