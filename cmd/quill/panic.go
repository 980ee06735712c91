package main

import (
	"github.com/spf13/cobra"

	"omibyte.io/quill/strview"
)

var panicCmd = &cobra.Command{
	Use:   "panic [reason]",
	Short: "Write a reason verbatim to standard error and exit with status 1",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHost(cmd)
		if err != nil {
			return err
		}
		defer h.Close()

		reasons, err := payloads(args, cmd.InOrStdin(), globalOpts.escape)
		if err != nil {
			return err
		}
		return h.Console.Fail(strview.FromBytes(reasons[0]))
	},
}
