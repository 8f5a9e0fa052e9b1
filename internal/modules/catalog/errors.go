package catalog

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("code or name already in use")
	ErrValidation = errors.New("validation error")
	ErrInUse      = errors.New("record still referenced by rooms")
)
