// Command quillvet checks code that calls the quill runtime primitives.
//
//	quillvet ./...
//
// It reports statements that can never run because they follow a call that
// never returns, and strview.String values kept beyond the call that
// received them.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"omibyte.io/quill/analysis/failflow"
	"omibyte.io/quill/analysis/viewretain"
)

func main() {
	multichecker.Main(
		failflow.Analyzer,
		viewretain.Analyzer,
	)
}
