package workspace

import (
	"context"
	"fmt"

	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/internal/naming"
)

// ResolveInput identifies the workspace to look up.
type ResolveInput struct {
	// Organization is the organization owning the workspace.
	Organization string `json:"organization"`
	// Name is the workspace name.
	Name string `json:"name"`
}

// ResolveOutput wraps the resolved workspace.
type ResolveOutput struct {
	// Workspace is the resolved entity carrying its platform ID.
	Workspace *model.Workspace `json:"workspace"`
}

// Resolve validates the workspace name and looks up its platform ID.
// Validation failures surface before any network call is made.
func (u *UseCase) Resolve(ctx context.Context, in *ResolveInput) (*ResolveOutput, error) {
	if in == nil || in.Name == "" || in.Organization == "" {
		return nil, model.ErrWorkspaceInvalid
	}
	if err := naming.ValidateWorkspaceName(in.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWorkspaceInvalid, err)
	}
	if err := naming.ValidateOrganizationName(in.Organization); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrWorkspaceInvalid, err)
	}
	ws, err := u.Ports.Workspace.WorkspaceGet(ctx, in.Organization, in.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace %s: %w", in.Name, err)
	}
	return &ResolveOutput{Workspace: ws}, nil
}
