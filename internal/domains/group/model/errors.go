package model

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrSlugTaken     = errors.New("slug already in use")
	ErrInvalidSlug   = errors.New("invalid slug")
)
