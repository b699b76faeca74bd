package upload

import "errors"

var (
	ErrNoFile         = errors.New("no file selected")
	ErrTypeNotAllowed = errors.New("file type is not allowed")
)
