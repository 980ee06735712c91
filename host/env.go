package host

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Env map[string]string

// Environment reads the quill runtime settings from the process environment.
// Unset keys are present with an empty value so they can be listed.
func Environment() Env {
	return map[string]string{
		"QUILL_STDOUT":    getenv("QUILL_STDOUT", ""),
		"QUILL_STDERR":    getenv("QUILL_STDERR", ""),
		"QUILL_STRICT":    getenv("QUILL_STRICT", ""),
		"QUILL_VERBOSITY": getenv("QUILL_VERBOSITY", ""),
		"QUILL_CONFIG":    getenv("QUILL_CONFIG", ""),
	}
}

// Print writes the environment to w, one "set KEY=VALUE" line per key in
// sorted order.
func (e Env) Print(w io.Writer) {
	for _, k := range e.keys() {
		fmt.Fprintf(w, "set %s=%s\n", k, e[k])
	}
}

func (e Env) Value(key string) string {
	if v, ok := e[key]; ok {
		return v
	}
	return ""
}

func (e Env) List() []string {
	var result []string
	for _, key := range e.keys() {
		result = append(result, fmt.Sprintf("%s=%s", key, e[key]))
	}
	return result
}

func (e Env) keys() []string {
	keys := maps.Keys(e)
	slices.Sort(keys)
	return keys
}

func getenv(key, _default string) (value string) {
	value = os.Getenv(key)
	if len(value) == 0 {
		value = _default
	}
	return value
}
