package domain

import "time"

// File records an uploaded file. Path is relative to the static root,
// so the same value works as a disk path and a URL suffix. File rows
// are never updated or deleted through any exposed operation.
type File struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UserID     int64     `json:"user_id"`
	UploadedAt time.Time `json:"uploaded_at"`
}
