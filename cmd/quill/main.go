package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"omibyte.io/quill/host"
	"omibyte.io/quill/rtio"
)

const usageStatus = 2

var (
	globalOpts = struct {
		stdout  string
		stderr  string
		config  string
		verbose string
		strict  bool
		escape  bool
	}{}

	rootCmd = &cobra.Command{
		Use:   "quill",
		Short: "Drive the quill runtime output primitives",
		Long: `quill runs the runtime's println and panic primitives from the command line.

println writes its input to standard output exactly as given. panic writes its
input to standard error exactly as given and exits with status 1. Neither adds
a line terminator; pass -e to decode escapes such as \n.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

func init() {
	bindGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(printlnCmd, panicCmd, envCmd)
}

func bindGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&globalOpts.stdout, "stdout", "", "standard output target (-, stdout, stderr or a file)")
	flags.StringVar(&globalOpts.stderr, "stderr", "", "standard error target (-, stdout, stderr or a file)")
	flags.StringVarP(&globalOpts.config, "config", "c", "", "runtime profile file. Default: $QUILL_CONFIG")
	flags.StringVarP(&globalOpts.verbose, "verbose", "v", "", "diagnostic verbosity (quiet, info, warning, debug)")
	flags.BoolVar(&globalOpts.strict, "strict", false, "report println write failures")
	flags.BoolVarP(&globalOpts.escape, "escape", "e", false, "decode backslash escapes in arguments")
}

// openHost builds the console for a command. Flags that were not given leave
// the environment and profile values in place.
func openHost(cmd *cobra.Command) (*host.Host, error) {
	overrides := host.Profile{
		Stdout:    globalOpts.stdout,
		Stderr:    globalOpts.stderr,
		Verbosity: globalOpts.verbose,
	}
	if cmd.Flags().Changed("strict") {
		strict := globalOpts.strict
		overrides.Strict = &strict
	}

	h, err := host.Open(host.Options{
		Overrides:  overrides,
		ConfigFile: globalOpts.config,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	// main terminates through the console the command wrote through.
	rtio.SetDefault(h.Console)
	return h, nil
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	// A fatal error has already written its reason; only the exit remains.
	// The default console is the one openHost built for the command.
	if rtio.IsFatal(err) {
		rtio.Default().Terminate(err)
	}

	fmt.Fprintln(os.Stderr, "quill:", err)
	os.Exit(usageStatus)
}
