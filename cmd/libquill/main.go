//go:build cgo

// Command libquill builds the quill runtime output primitives as a C library:
//
//	go build -buildmode=c-archive -o libquill.a ./cmd/libquill
//
// Compiled quill programs call quill_println and quill_panic with a
// quill_string_t that they keep valid for the duration of the call.
package main

/*
#include <stddef.h>

typedef struct {
	const char *data;
	size_t length_bytes;
} quill_string_t;
*/
import "C"

import (
	"unsafe"

	"omibyte.io/quill/strview"
)

//export quill_println
func quill_println(line C.quill_string_t) {
	console().Println(view(line))
}

//export quill_panic
func quill_panic(reason C.quill_string_t) {
	console().Abort(view(reason))
}

func view(s C.quill_string_t) strview.String {
	return contractView(console(), unsafe.Pointer(s.data), uint64(s.length_bytes))
}
