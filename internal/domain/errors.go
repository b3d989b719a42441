package domain

import "errors"

var (
	ErrListNotFound = errors.New("list not found")
	ErrURLNotFound  = errors.New("url not found")
	ErrSlugConflict = errors.New("slug already exists")
)
