package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/quill/host"
)

var (
	envOpts = struct {
		profile bool
	}{}

	envCmd = &cobra.Command{
		Use:   "env",
		Short: "Print quill runtime environment information",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := host.Environment()
			if !envOpts.profile {
				env.Print(cmd.OutOrStdout())
				return nil
			}

			profile, err := host.Resolve(host.Options{
				ConfigFile:  globalOpts.config,
				Environment: env,
			})
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(profile)
		},
	}
)

func init() {
	envCmd.Flags().BoolVarP(&envOpts.profile, "profile", "p", false, "print the resolved runtime profile as YAML")
}
