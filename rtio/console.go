// Package rtio implements the runtime's two output primitives: Println, which
// writes a byte string verbatim to standard output, and Panic, which writes a
// byte string verbatim to standard error and terminates the process with
// status 1.
//
// The streams and the exit function are held by a Console so they can be
// replaced. A Console adds no locking of its own: each call is a single Write
// request and interleaving across concurrent callers is whatever the
// underlying writer provides. *os.File is safe for concurrent writers.
package rtio

import (
	"errors"
	"io"
	"os"

	"omibyte.io/quill/strview"
)

type Console struct {
	stdout    io.Writer
	stderr    io.Writer
	exit      func(int)
	strict    bool
	diag      io.Writer
	verbosity Verbosity
}

// NewConsole returns a console writing to stdout and stderr. Nil writers are
// replaced by the process streams.
func NewConsole(stdout, stderr io.Writer, opts ...Option) *Console {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	c := &Console{
		stdout: stdout,
		stderr: stderr,
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Println writes exactly the bytes of line to standard output. No delimiter
// or line terminator is added. Write failures are dropped and nil is returned
// unless the console was created WithStrictWrites.
func (c *Console) Println(line strview.String) error {
	if _, err := line.WriteTo(c.stdout); err != nil {
		if c.strict {
			return errors.Join(ErrWriteFailed, err)
		}
		c.printf(Warning, "rtio: dropped %d byte write to stdout: %v\n", line.Len(), err)
	}
	return nil
}

// Fail writes exactly the bytes of reason to standard error and returns
// ErrFatal. The caller must not continue; the error is handed to Terminate
// by the top-level driver.
func (c *Console) Fail(reason strview.String) error {
	if _, err := reason.WriteTo(c.stderr); err != nil {
		c.printf(Warning, "rtio: dropped %d byte write to stderr: %v\n", reason.Len(), err)
	}
	return ErrFatal
}

// Terminate exits the process with ExitStatus if err carries a *Fatal. Any
// other error, including nil, is returned unchanged.
func (c *Console) Terminate(err error) error {
	if !IsFatal(err) {
		return err
	}
	c.printf(Debug, "rtio: exiting with status %d\n", ExitStatus)
	c.exit(ExitStatus)
	return err
}

// Abort is Fail followed by Terminate. It never returns: if the exit function
// does, Abort panics with ErrExitReturned.
func (c *Console) Abort(reason strview.String) {
	c.Terminate(c.Fail(reason))
	panic(ErrExitReturned)
}
