package post

import "errors"

var (
	ErrEmptyFields  = errors.New("title and content must not be empty")
	ErrPostNotFound = errors.New("post not found")
	ErrForbidden    = errors.New("you do not own this post")
)
