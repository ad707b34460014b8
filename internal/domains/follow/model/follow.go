package model

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph: UserID (the
// subscriber) receives AuthorID's posts in their follow feed.
// The (user_id, author_id) pair is unique at the storage layer so
// concurrent duplicate follows collapse into one edge.
type Follow struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Counts is the cardinality of a user's incoming and outgoing edges.
type Counts struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}
