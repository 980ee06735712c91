package main

import (
	"math"
	"unsafe"

	"omibyte.io/quill/rtio"
	"omibyte.io/quill/strview"
)

// console returns the console the exported primitives write through. It is
// always the process default: the real standard streams and os.Exit. The
// QUILL_* environment and profile files configure the quill command only.
func console() *rtio.Console {
	return rtio.Default()
}

const lengthOverflowMessage = "quill: string length overflows the address space\n"

func invalidViewMessage(err error) string {
	return "quill: invalid string passed to the runtime: " + err.Error() + "\n"
}

// contractView turns a pointer and length received over the C ABI into a
// view. A malformed pair is a contract violation and aborts through c.
func contractView(c *rtio.Console, p unsafe.Pointer, n uint64) strview.String {
	if n > math.MaxInt {
		c.Abort(strview.FromString(lengthOverflowMessage))
	}

	v, err := strview.Checked(p, int(n))
	if err != nil {
		c.Abort(strview.FromString(invalidViewMessage(err)))
	}
	return v
}

func main() {}
