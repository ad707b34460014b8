package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the author identity every post, comment and follow edge
// references.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          *string   `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToDTO strips credentials before the entity leaves the service layer.
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt,
	}
}
