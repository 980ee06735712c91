// Package strview provides the borrowed byte string handed from compiled
// quill programs to the runtime output primitives.
package strview

import (
	"io"
	"unsafe"
)

// String is a read-only view over bytes owned by the caller. It is cheap to
// copy and never copies, owns or frees the underlying buffer. A String is only
// valid for the duration of the call it is passed to and must not be retained.
type String struct {
	b []byte
}

// FromBytes returns a view over b.
func FromBytes(b []byte) String {
	return String{b: b}
}

// FromString returns a view over the storage backing s.
func FromString(s string) String {
	if len(s) == 0 {
		return String{}
	}
	return String{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromPointer returns a view over n bytes starting at p. The data pointer is
// not read when n is zero. FromPointer panics if n is negative or if p is nil
// and n is positive; use Checked when the pair comes from untrusted code.
func FromPointer(p unsafe.Pointer, n int) String {
	if n == 0 {
		return String{}
	}
	return String{b: unsafe.Slice((*byte)(p), n)}
}

// Checked is like FromPointer but reports a malformed pointer and length pair
// instead of panicking.
func Checked(p unsafe.Pointer, n int) (String, error) {
	switch {
	case n < 0:
		return String{}, ErrNegativeLength
	case n > 0 && p == nil:
		return String{}, ErrNilData
	}
	return FromPointer(p, n), nil
}

func (s String) Len() int {
	return len(s.b)
}

func (s String) IsEmpty() bool {
	return len(s.b) == 0
}

// Bytes returns the viewed bytes without copying. The result must not be
// modified or kept after the call that received s returns.
func (s String) Bytes() []byte {
	return s.b
}

// String returns a copy of the viewed bytes.
func (s String) String() string {
	return string(s.b)
}

// WriteTo hands every byte of s to w in a single Write request.
func (s String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.b)
	if err == nil && n < len(s.b) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
