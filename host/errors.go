package host

import "errors"

var (
	ErrProfile       = errors.New("failed to load runtime profile")
	ErrInvalidStrict = errors.New("invalid strict setting")
	ErrOpenStream    = errors.New("failed to open stream target")
)
