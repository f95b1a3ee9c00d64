package tfcopscfg

import (
	"fmt"
	"time"

	"github.com/tfcops/tfcops/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Version != "v1" {
		return fmt.Errorf("version: unsupported value %q, must be \"v1\"", r.Version)
	}
	if err := r.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := r.Run.validate(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	if err := r.Logging.validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

func (a *API) validate() error {
	if a.Organization != "" {
		if err := naming.ValidateOrganizationName(a.Organization); err != nil {
			return fmt.Errorf("organization: %w", err)
		}
	}
	return nil
}

func (r *Run) validate() error {
	if r.Workspace != "" {
		if err := naming.ValidateWorkspaceName(r.Workspace); err != nil {
			return fmt.Errorf("workspace: %w", err)
		}
	}
	if r.RetryDuration != "" {
		if _, err := time.ParseDuration(r.RetryDuration); err != nil {
			return fmt.Errorf("retryDuration: %w", err)
		}
	}
	if r.RetryLimit < 0 {
		return fmt.Errorf("retryLimit: must not be negative")
	}
	if r.PollInterval != "" {
		if _, err := time.ParseDuration(r.PollInterval); err != nil {
			return fmt.Errorf("pollInterval: %w", err)
		}
	}
	return nil
}

func (l *Logging) validate() error {
	switch l.Format {
	case "", "human", "text", "json":
	default:
		return fmt.Errorf("format: invalid value %q, must be \"human\", \"text\", or \"json\"", l.Format)
	}
	switch l.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("level: invalid value %q", l.Level)
	}
	return nil
}
