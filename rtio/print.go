package rtio

import "fmt"

func (c *Console) printf(verbosity Verbosity, format string, args ...any) {
	if c.diag != nil && c.verbosity >= verbosity {
		fmt.Fprintf(c.diag, format, args...)
	}
}
