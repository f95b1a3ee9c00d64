package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/tfcops/tfcops/config/tfcopscfg"
	"github.com/tfcops/tfcops/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tfcops",
		Short:   "Terraform Cloud/Enterprise run orchestration CLI",
		Long:    "tfcops uploads configuration bundles and drives runs on Terraform Cloud/Enterprise workspaces.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultFile := os.Getenv("TFCOPS_CONFIG")
	if defaultFile == "" {
		defaultFile = tfcopscfg.DefaultConfigPath
	}
	cmd.PersistentFlags().StringP("file", "f", defaultFile, "Path to tfcops.yml (env TFCOPS_CONFIG)")

	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env TFCOPS_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error) (env TFCOPS_LOG_LEVEL)")
	cmd.PersistentFlags().String("log-output", "", "Log output (path | \"-\" for stderr | \"none\") (env TFCOPS_LOG_OUTPUT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		levelName, _ := c.Flags().GetString("log-level")
		// The config file supplies defaults when the flags are untouched.
		// Best effort: commands like init run before any config exists.
		if cfg, err := tfcopscfg.Load(configFile(c)); err == nil {
			if !c.Flags().Changed("log-format") && cfg.Logging.Format != "" {
				format = cfg.Logging.Format
			}
			if !c.Flags().Changed("log-level") && cfg.Logging.Level != "" {
				levelName = cfg.Logging.Level
			}
		}
		if env := os.Getenv("TFCOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		if env := os.Getenv("TFCOPS_LOG_LEVEL"); env != "" {
			levelName = env
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}
		output, _ := c.Flags().GetString("log-output")
		if env := os.Getenv("TFCOPS_LOG_OUTPUT"); env != "" {
			output = env
		}
		logFile, err := logging.NewLogFile(output)
		if err != nil {
			return err
		}
		l, err := logging.NewWithWriter(format, level, logFile.Writer())
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdWorkspace())
	cmd.AddCommand(newCmdRun())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
