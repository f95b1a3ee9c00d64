package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tfcops/tfcops/cmd/tfcops/watchtui"
	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/usecase/run"
)

// newCmdRun returns the parent command for run-related operations.
func newCmdRun() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "Run related commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help if no subcommand provided
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdRunStart())
	c.AddCommand(newCmdRunStatus())
	c.AddCommand(newCmdRunWatch())
	return c
}

// newCmdRunStart uploads a configuration bundle and queues a run.
func newCmdRunStart() *cobra.Command {
	var workspaceName string
	var archive string
	var identifier string
	var message string
	var apply bool
	var destroy bool
	var speculative bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Upload a configuration bundle and queue a run",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, s, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}
			if workspaceName == "" {
				workspaceName = s.Workspace
			}
			if message == "" {
				message = s.Message
			}
			if identifier == "" {
				identifier = uuid.New().String()
			}

			content, closeContent, err := openArchive(archive)
			if err != nil {
				return err
			}
			defer closeContent()

			ctx, cleanup := withCmdRunLogger(cmd.Context(), "run.start", workspaceName)
			defer func() { cleanup(err) }()

			out, err := uc.Start(ctx, &run.StartInput{
				Organization: s.Organization,
				Workspace:    workspaceName,
				Content:      content,
				Identifier:   identifier,
				Message:      message,
				AwaitApply:   apply,
				Destroy:      destroy,
				Speculative:  speculative,
			})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), out.RunID, out.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceName, "workspace", "w", "", "Workspace name (default from config)")
	cmd.Flags().StringVarP(&archive, "archive", "a", "", "Configuration bundle to upload (tar.gz path, \"-\" for stdin)")
	cmd.Flags().StringVar(&identifier, "identifier", "", "Marker embedded in the run message (default: random UUID)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Run message (default from config)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Wait for the run to finish before returning")
	cmd.Flags().BoolVar(&destroy, "destroy", false, "Queue a destroy run")
	cmd.Flags().BoolVar(&speculative, "speculative", false, "Create a plan-only configuration version")
	cmd.MarkFlagRequired("archive")
	return cmd
}

// openArchive opens the bundle at path, or stdin for "-".
func openArchive(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open archive %s: %w", path, err)
	}
	return f, f.Close, nil
}

// newCmdRunStatus fetches and prints the current status of a run.
func newCmdRunStatus() *cobra.Command {
	return &cobra.Command{
		Use:   "status RUN-ID",
		Short: "Show the current status of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, _, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}
			runID := args[0]

			ctx, cleanup := withCmdRunLogger(cmd.Context(), "run.status", runID)
			defer func() { cleanup(err) }()

			out, err := uc.Status(ctx, &run.StatusInput{RunID: runID})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), out.Run.ID, out.Run.Status)
			return nil
		},
	}
}

// newCmdRunWatch polls a run until it finishes.
func newCmdRunWatch() *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:   "watch RUN-ID",
		Short: "Poll a run until it finishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, _, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}
			runID := args[0]

			ctx, cleanup := withCmdRunLogger(cmd.Context(), "run.watch", runID)
			defer func() { cleanup(err) }()

			if tui {
				if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
					return fmt.Errorf("--tui requires an interactive terminal")
				}
				final, err := watchtui.Watch(ctx, runID, uc.PollInterval, func(ctx context.Context) (*model.Run, error) {
					out, err := uc.Status(ctx, &run.StatusInput{RunID: runID})
					if err != nil {
						return nil, err
					}
					return out.Run, nil
				})
				if err != nil {
					return err
				}
				printRun(cmd.OutOrStdout(), final.ID, final.Status)
				return nil
			}

			out, err := uc.Wait(ctx, &run.WaitInput{RunID: runID})
			if err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), out.Run.ID, out.Run.Status)
			return nil
		},
	}

	cmd.Flags().BoolVar(&tui, "tui", false, "Render an interactive status view while polling")
	return cmd
}
