package store

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrInvalidRole indicates a message with a role outside the known set.
	ErrInvalidRole = errors.New("store: invalid message role")
)
