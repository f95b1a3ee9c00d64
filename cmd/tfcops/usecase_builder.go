package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tfcops/tfcops/adapters/tfcapi"
	"github.com/tfcops/tfcops/config/tfcopscfg"
	"github.com/tfcops/tfcops/usecase/configversion"
	"github.com/tfcops/tfcops/usecase/run"
	"github.com/tfcops/tfcops/usecase/workspace"
)

// findFlag looks up a flag across the command hierarchy.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// configFile extracts the file flag value from the command hierarchy.
func configFile(cmd *cobra.Command) string {
	if f := findFlag(cmd, "file"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return tfcopscfg.DefaultConfigPath
}

// loadSettings reads the configuration file selected by -f and resolves it.
func loadSettings(cmd *cobra.Command) (*tfcopscfg.Settings, error) {
	cfg, err := tfcopscfg.Load(configFile(cmd))
	if err != nil {
		return nil, err
	}
	return cfg.ToSettings()
}

// buildClient creates the API client from resolved settings.
func buildClient(s *tfcopscfg.Settings) (*tfcapi.Client, error) {
	if s.Token == "" {
		return nil, fmt.Errorf("no API token configured (set api.token or TFCOPS_TOKEN)")
	}
	return tfcapi.New(&tfcapi.Options{Address: s.Address, Token: s.Token})
}

// buildWorkspaceUseCase creates workspace use case with required ports.
func buildWorkspaceUseCase(cmd *cobra.Command) (*workspace.UseCase, *tfcopscfg.Settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := buildClient(s)
	if err != nil {
		return nil, nil, err
	}
	return &workspace.UseCase{Ports: &workspace.Ports{Workspace: client}}, s, nil
}

// buildRunUseCase creates run use case with required ports and collaborating use cases.
func buildRunUseCase(cmd *cobra.Command) (*run.UseCase, *tfcopscfg.Settings, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, err := buildClient(s)
	if err != nil {
		return nil, nil, err
	}
	uc := &run.UseCase{
		Ports:      &run.Ports{Run: client},
		Workspaces: &workspace.UseCase{Ports: &workspace.Ports{Workspace: client}},
		ConfigVersions: &configversion.UseCase{
			Ports:         &configversion.Ports{ConfigVersion: client},
			RetryDuration: s.RetryDuration,
			RetryLimit:    s.RetryLimit,
		},
		PollInterval: s.PollInterval,
		RetryLimit:   s.RetryLimit,
	}
	return uc, s, nil
}
