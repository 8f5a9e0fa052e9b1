package blocking

import "errors"

var (
	ErrNotFound         = errors.New("blocking not found")
	ErrRoomNotFound     = errors.New("room not found")
	ErrValidation       = errors.New("validation error")
	ErrInvalidLifecycle = errors.New("blocking status does not allow this change")
)
