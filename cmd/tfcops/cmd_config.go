package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tfcops/tfcops/adapters/tfcapi"
	"github.com/tfcops/tfcops/config/tfcopscfg"
)

// newCmdConfig returns a command that reads and shows the current configuration.
func newCmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Read and validate configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := tfcopscfg.Load(configFile(cmd))
			if err != nil {
				return err
			}
			s, err := cfg.ToSettings()
			if err != nil {
				return err
			}
			address := s.Address
			if address == "" {
				address = tfcapi.DefaultAddress
			}
			logFormat := s.LogFormat
			if logFormat == "" {
				logFormat = "human"
			}
			logLevel := s.LogLevel
			if logLevel == "" {
				logLevel = "info"
			}
			// Print a concise summary to stdout; the token stays out of it.
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s address=%s organization=%s workspace=%s retryDuration=%s retryLimit=%d pollInterval=%s logFormat=%s logLevel=%s\n",
				cfg.Version, address, s.Organization, s.Workspace, s.RetryDuration, s.RetryLimit, s.PollInterval, logFormat, logLevel)
			return nil
		},
	}
}
