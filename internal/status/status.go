package status

import "errors"

var (
	ErrEventNotFound    = errors.New("event: event not found")
	ErrEventExists      = errors.New("event: event id already exists")
	ErrImageNotFound    = errors.New("image: unknown image type")
	ErrImageFileMissing = errors.New("image: image file not found")
)
