package model

import "context"

// Workspace represents a remote workspace resource.
// Workspaces pre-exist on the platform; this client only looks them up.
type Workspace struct {
	ID           string
	Name         string
	Organization string
}

// WorkspacePort is an interface (domain port) for workspace lookup on the remote platform.
type WorkspacePort interface {
	WorkspaceGet(ctx context.Context, organization, name string) (*Workspace, error)
}
