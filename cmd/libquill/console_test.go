package main

import (
	"math"
	"strings"
	"testing"
	"unsafe"

	"omibyte.io/quill/rtio"
	"omibyte.io/quill/rtio/rtiotest"
)

func TestContractView(t *testing.T) {
	buf := []byte("hello\n")

	tests := []struct {
		name   string
		p      unsafe.Pointer
		n      uint64
		want   string
		stderr string
	}{
		{"valid", unsafe.Pointer(&buf[0]), 6, "hello\n", ""},
		{"prefix", unsafe.Pointer(&buf[0]), 5, "hello", ""},
		{"empty", nil, 0, "", ""},
		{"nilData", nil, 3, "", "nil data"},
		{"overflow", unsafe.Pointer(&buf[0]), math.MaxUint64, "", "overflows"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr rtiotest.Sink
			var exits rtiotest.ExitRecorder
			c := rtio.NewConsole(&rtiotest.Sink{}, &stderr, rtio.WithExit(exits.Exit))

			var got string
			status, exited := exits.Run(func() {
				got = contractView(c, tc.p, tc.n).String()
			})

			if len(tc.stderr) == 0 {
				if exited {
					t.Fatalf("unexpected exit with stderr %q", stderr.String())
				}
				if got != tc.want {
					t.Errorf("expected %q, got %q", tc.want, got)
				}
				return
			}

			if !exited || status != rtio.ExitStatus {
				t.Fatalf("expected exit status 1, got exited=%v status=%d", exited, status)
			}
			if !strings.HasPrefix(stderr.String(), "quill: ") || !strings.Contains(stderr.String(), tc.stderr) {
				t.Errorf("unexpected diagnostic %q", stderr.String())
			}
		})
	}
}
