package model

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrNotAuthor     = errors.New("only the author may modify a post")
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
)
