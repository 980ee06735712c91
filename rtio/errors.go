package rtio

import (
	"errors"
	"fmt"
)

// ExitStatus is the process status used by every fatal termination.
const ExitStatus = 1

// Fatal is the unrecoverable variant produced by Fail. It carries no part of
// the reason; that has already been written to the error stream. Termination
// always uses ExitStatus.
type Fatal struct{}

func (*Fatal) Error() string {
	return fmt.Sprintf("fatal runtime error (exit status %d)", ExitStatus)
}

var (
	ErrFatal            error = &Fatal{}
	ErrWriteFailed            = errors.New("write to output stream failed")
	ErrExitReturned           = errors.New("exit function returned after a fatal error")
	ErrUnknownVerbosity       = errors.New("unknown verbosity level")
)

// IsFatal reports whether err carries the fatal variant.
func IsFatal(err error) bool {
	var f *Fatal
	return errors.As(err, &f)
}
