package model

import (
	"time"

	"github.com/google/uuid"
)

// Post is a publication in a feed. The author never changes after
// creation; the group may be reassigned by the author. BIGSERIAL ids
// break ordering ties when timestamps collide.
type Post struct {
	ID             int64      `json:"id"`
	Text           string     `json:"text"`
	AuthorID       uuid.UUID  `json:"author_id"`
	AuthorUsername string     `json:"author_username"`
	GroupID        *uuid.UUID `json:"group_id,omitempty"`
	GroupSlug      *string    `json:"group_slug,omitempty"`
	ImageURL       *string    `json:"image_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// Comment is an append-only reply on a post; it is removed together
// with its post. No edit or delete operations exist.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post_id"`
	AuthorID       uuid.UUID `json:"author_id"`
	AuthorUsername string    `json:"author_username"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}
