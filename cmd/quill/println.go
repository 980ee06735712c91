package main

import (
	"github.com/spf13/cobra"

	"omibyte.io/quill/rtio"
	"omibyte.io/quill/strview"
)

var printlnCmd = &cobra.Command{
	Use:   "println [text...]",
	Short: "Write text verbatim to standard output",
	Long:  "Write each argument verbatim to standard output as its own write, with no separator or line terminator. With no arguments, or \"-\", standard input is copied.",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := openHost(cmd)
		if err != nil {
			return err
		}
		defer h.Close()

		lines, err := payloads(args, cmd.InOrStdin(), globalOpts.escape)
		if err != nil {
			return err
		}

		for _, line := range lines {
			if err := h.Console.Println(strview.FromBytes(line)); err != nil {
				// The reader went away; nothing left to deliver to.
				if rtio.IsBrokenPipe(err) {
					return nil
				}
				return err
			}
		}
		return nil
	},
}
