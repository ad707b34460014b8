package model

import "errors"

var (
	ErrSelfFollow     = errors.New("cannot follow yourself")
	ErrAuthorNotFound = errors.New("author not found")
)
