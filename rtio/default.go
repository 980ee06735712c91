package rtio

import (
	"sync/atomic"

	"omibyte.io/quill/strview"
)

var std atomic.Pointer[Console]

func init() {
	std.Store(NewConsole(nil, nil))
}

// Default returns the console used by Println and Panic.
func Default() *Console {
	return std.Load()
}

// SetDefault installs c as the process console and returns the previous one.
func SetDefault(c *Console) *Console {
	return std.Swap(c)
}

// Println writes line verbatim to the process console's standard output.
// Failures are not reported.
func Println(line strview.String) {
	Default().Println(line)
}

// Panic writes reason verbatim to the process console's standard error and
// terminates the process with status 1. It does not return.
func Panic(reason strview.String) {
	Default().Abort(reason)
}
