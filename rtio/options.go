package rtio

import (
	"io"
	"strings"
)

type Verbosity int

const (
	Quiet Verbosity = iota
	Info
	Warning
	Debug
)

func (v Verbosity) String() string {
	switch v {
	case Quiet:
		return "quiet"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Debug:
		return "debug"
	}
	return "unknown"
}

// ParseVerbosity maps a verbosity name to its level. An empty name is Quiet.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "", "quiet":
		return Quiet, nil
	case "info":
		return Info, nil
	case "warning":
		return Warning, nil
	case "debug", "verbose":
		return Debug, nil
	}
	return Quiet, ErrUnknownVerbosity
}

type Option func(c *Console)

// WithExit replaces the function used to terminate the process.
func WithExit(exit func(int)) Option {
	return func(c *Console) {
		c.exit = exit
	}
}

// WithStrictWrites makes Println report write failures instead of dropping
// them.
func WithStrictWrites() Option {
	return func(c *Console) {
		c.strict = true
	}
}

// WithDiagnostics routes the console's own diagnostics to w. They never go to
// the console's output streams unless w is one of them.
func WithDiagnostics(w io.Writer, verbosity Verbosity) Option {
	return func(c *Console) {
		c.diag = w
		c.verbosity = verbosity
	}
}
