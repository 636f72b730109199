package storage

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyVoted = errors.New("feedback already submitted")
	ErrSlugExists   = errors.New("slug already exists")
	ErrUnknownKind  = errors.New("unknown content kind")
)
