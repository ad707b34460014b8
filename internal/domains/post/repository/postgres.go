package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yatube-backend/internal/domains/post/model"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// postSelect joins the author username and group slug every feed
// entry displays.
const postSelect = `
	SELECT p.id, p.text, p.author_id, u.username, p.group_id, g.slug, p.image_url, p.created_at
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN groups g ON g.id = p.group_id
`

const feedOrder = ` ORDER BY p.created_at DESC, p.id DESC LIMIT $%d OFFSET $%d`

// =====================================================
// POST CRUD
// =====================================================

func (r *postgresPostRepository) CreatePost(ctx context.Context, p *model.Post) error {
	// created_at is server-assigned and immutable
	query := `
		INSERT INTO posts (text, author_id, group_id, image_url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.Text,
		p.AuthorID,
		p.GroupID,
		p.ImageURL,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) GetPostByID(ctx context.Context, id int64) (*model.Post, error) {
	query := postSelect + ` WHERE p.id = $1`

	p, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

func (r *postgresPostRepository) UpdatePost(ctx context.Context, p *model.Post) error {
	// author_id is deliberately absent: authorship never changes
	query := `
		UPDATE posts
		SET text = $2, group_id = $3, image_url = $4
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, p.ID, p.Text, p.GroupID, p.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepository) DeletePost(ctx context.Context, id int64) error {
	// comments go with the post via ON DELETE CASCADE
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}

// =====================================================
// FEED QUERIES
// =====================================================

func (r *postgresPostRepository) ListAll(ctx context.Context, limit, offset int) ([]*model.Post, int, error) {
	query := postSelect + fmt.Sprintf(feedOrder, 1, 2)

	posts, err := r.listPosts(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresPostRepository) ListByGroup(ctx context.Context, groupID uuid.UUID, limit, offset int) ([]*model.Post, int, error) {
	query := postSelect + ` WHERE p.group_id = $1` + fmt.Sprintf(feedOrder, 2, 3)

	posts, err := r.listPosts(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM posts WHERE group_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count group posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresPostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*model.Post, int, error) {
	query := postSelect + ` WHERE p.author_id = $1` + fmt.Sprintf(feedOrder, 2, 3)

	posts, err := r.listPosts(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *postgresPostRepository) ListFollowed(ctx context.Context, subscriberID uuid.UUID, limit, offset int) ([]*model.Post, int, error) {
	query := postSelect + `
	WHERE p.author_id IN (SELECT author_id FROM follows WHERE user_id = $1)` +
		fmt.Sprintf(feedOrder, 2, 3)

	posts, err := r.listPosts(ctx, query, subscriberID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM posts
		WHERE author_id IN (SELECT author_id FROM follows WHERE user_id = $1)
	`
	if err := r.pool.QueryRow(ctx, countQuery, subscriberID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count followed posts: %w", err)
	}

	return posts, total, nil
}

func (r *postgresPostRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`
	if err := r.pool.QueryRow(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count author posts: %w", err)
	}

	return count, nil
}

func (r *postgresPostRepository) listPosts(ctx context.Context, query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return posts, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	p := &model.Post{}
	err := row.Scan(
		&p.ID,
		&p.Text,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.GroupID,
		&p.GroupSlug,
		&p.ImageURL,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// =====================================================
// COMMENTS
// =====================================================

func (r *postgresPostRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	// The author username is returned alongside so the fresh comment
	// renders without a second round trip
	query := `
		INSERT INTO comments (post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at, (SELECT username FROM users WHERE id = $2)
	`

	err := r.pool.QueryRow(ctx, query,
		c.PostID,
		c.AuthorID,
		c.Text,
	).Scan(&c.ID, &c.CreatedAt, &c.AuthorUsername)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresPostRepository) ListComments(ctx context.Context, postID int64) ([]*model.Comment, error) {
	// Oldest first, the reading order of a comment thread
	query := `
		SELECT c.id, c.post_id, c.author_id, u.username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		c := &model.Comment{}
		err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.AuthorID,
			&c.AuthorUsername,
			&c.Text,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return comments, nil
}
