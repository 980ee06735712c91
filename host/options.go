package host

import "io"

type Options struct {
	// Overrides is the highest precedence profile layer, usually filled from
	// command line flags.
	Overrides   Profile
	ConfigFile  string
	Environment Env

	// Process streams and exit function. Nil means the real ones.
	Stdout      io.Writer
	Stderr      io.Writer
	Diagnostics io.Writer
	Exit        func(int)
}
