package rtio

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err is a broken or closed pipe, typically a
// reader such as `head` that went away early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
