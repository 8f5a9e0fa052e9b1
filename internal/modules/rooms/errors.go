package rooms

import "errors"

var (
	ErrNotFound   = errors.New("room not found")
	ErrArchived   = errors.New("room is archived")
	ErrDuplicate  = errors.New("room number already exists on this floor")
	ErrValidation = errors.New("validation error")
)
