package model

import (
	"context"
	"io"
)

// ConfigVersionStatus is the processing status of a configuration version.
type ConfigVersionStatus string

const (
	ConfigVersionStatusPending  ConfigVersionStatus = "pending"
	ConfigVersionStatusUploaded ConfigVersionStatus = "uploaded"
	ConfigVersionStatusErrored  ConfigVersionStatus = "errored"
)

// Uploaded reports whether the configuration version finished server-side processing.
func (s ConfigVersionStatus) Uploaded() bool {
	return s == ConfigVersionStatusUploaded
}

// ConfigurationVersion represents an uploaded configuration snapshot for a workspace.
// Created in pending state; transitions to uploaded once the bundle is processed.
type ConfigurationVersion struct {
	ID        string
	Status    ConfigVersionStatus
	UploadURL string
}

// Operation-scoped options and functional option types.
type ConfigVersionCreateOptions struct {
	// AutoQueueRuns makes the platform queue a run when the upload completes.
	// The orchestrated workflow keeps this off so run creation stays explicit.
	AutoQueueRuns bool
	// Speculative marks the configuration version for plan-only runs.
	Speculative bool
}

type ConfigVersionCreateOption func(*ConfigVersionCreateOptions)

// Option helpers
func WithConfigVersionAutoQueueRuns() ConfigVersionCreateOption {
	return func(o *ConfigVersionCreateOptions) { o.AutoQueueRuns = true }
}
func WithConfigVersionSpeculative() ConfigVersionCreateOption {
	return func(o *ConfigVersionCreateOptions) { o.Speculative = true }
}

// ConfigurationVersionPort is an interface (domain port) for configuration version operations.
type ConfigurationVersionPort interface {
	ConfigVersionCreate(ctx context.Context, workspace *Workspace, opts ...ConfigVersionCreateOption) (*ConfigurationVersion, error)
	ConfigVersionGet(ctx context.Context, id string) (*ConfigurationVersion, error)
	ConfigVersionUpload(ctx context.Context, uploadURL string, content io.Reader) error
}
