package model

import (
	"time"

	"github.com/google/uuid"
)

// Group is a topic community posts can be filed under.
// The slug is its unique, URL-safe address.
type Group struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
