package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreatePostRequest struct {
	Text     string     `json:"text" binding:"required"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 10000),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil, is.URL.Error("image_url must be a valid URL")),
		),
	)
}

// UpdatePostRequest replaces the editable fields wholesale, the way
// the edit form does. The author is never part of it.
type UpdatePostRequest struct {
	Text     string     `json:"text" binding:"required"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 10000),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != nil, is.URL.Error("image_url must be a valid URL")),
		),
	)
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r AddCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
			validation.Length(1, 2000),
		),
	)
}

type FeedRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// ========================================
// RESPONSE DTOs
// ========================================

// PostDetailResponse is the post page: the post, its comments and the
// author's post and follower counts.
type PostDetailResponse struct {
	Post            *Post      `json:"post"`
	Comments        []*Comment `json:"comments"`
	AuthorPostCount int        `json:"author_post_count"`
	AuthorFollowers int        `json:"author_followers"`
}
