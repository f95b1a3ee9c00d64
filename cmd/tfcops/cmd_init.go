package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const initialConfigYAML = `version: v1
api:
  # address: https://app.terraform.io
  organization: my-organization
  # Set the token here or export TFCOPS_TOKEN.
  # token: ...
run:
  workspace: my-workspace
  # retryDuration: 1s
  # retryLimit: 5
  # pollInterval: 60s
logging:
  format: human
  level: info
`

// newCmdInit returns a command that writes a starter configuration file.
func newCmdInit() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter tfcops.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			file := configFile(cmd)
			if !forceFlag {
				if _, err := os.Stat(file); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", file)
				}
			}
			if err := os.WriteFile(file, []byte(initialConfigYAML), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", file, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", file)
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing configuration file")
	return cmd
}
