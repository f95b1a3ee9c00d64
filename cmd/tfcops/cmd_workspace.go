package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tfcops/tfcops/usecase/workspace"
)

// newCmdWorkspace returns the parent command for workspace-related operations.
func newCmdWorkspace() *cobra.Command {
	c := &cobra.Command{
		Use:   "workspace",
		Short: "Workspace related commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help if no subcommand provided
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.AddCommand(newCmdWorkspaceShow())
	return c
}

// newCmdWorkspaceShow resolves a workspace name to its platform ID.
func newCmdWorkspaceShow() *cobra.Command {
	var workspaceName string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Resolve and show a workspace",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, s, err := buildWorkspaceUseCase(cmd)
			if err != nil {
				return err
			}
			if workspaceName == "" {
				workspaceName = s.Workspace
			}

			ctx, cleanup := withCmdRunLogger(cmd.Context(), "workspace.show", workspaceName)
			defer func() { cleanup(err) }()

			out, err := uc.Resolve(ctx, &workspace.ResolveInput{
				Organization: s.Organization,
				Name:         workspaceName,
			})
			if err != nil {
				return err
			}
			ws := out.Workspace
			fmt.Fprintf(cmd.OutOrStdout(), "id=%s name=%s organization=%s\n", ws.ID, ws.Name, ws.Organization)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceName, "workspace", "w", "", "Workspace name (default from config)")
	return cmd
}
