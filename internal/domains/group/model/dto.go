package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description"`
}

func (r CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Slug,
			validation.Length(0, 50),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000),
		),
	)
}

type ListGroupsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
