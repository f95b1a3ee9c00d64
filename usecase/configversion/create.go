package configversion

import (
	"context"
	"fmt"

	"github.com/tfcops/tfcops/domain/model"
)

// CreateInput selects the workspace to attach the configuration version to.
type CreateInput struct {
	// Workspace is the resolved target workspace.
	Workspace *model.Workspace `json:"workspace"`
	// Speculative marks the configuration version for plan-only runs.
	Speculative bool `json:"speculative,omitempty"`
}

// CreateOutput wraps the created configuration version.
type CreateOutput struct {
	// ConfigVersion is the new entity in pending state, carrying its upload URL.
	ConfigVersion *model.ConfigurationVersion `json:"config_version"`
}

// Create requests a new configuration version with auto-queueing disabled,
// keeping run creation under the caller's control.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Workspace == nil || in.Workspace.ID == "" {
		return nil, model.ErrConfigVersionInvalid
	}
	var opts []model.ConfigVersionCreateOption
	if in.Speculative {
		opts = append(opts, model.WithConfigVersionSpeculative())
	}
	cv, err := u.Ports.ConfigVersion.ConfigVersionCreate(ctx, in.Workspace, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create configuration version: %w", err)
	}
	return &CreateOutput{ConfigVersion: cv}, nil
}
