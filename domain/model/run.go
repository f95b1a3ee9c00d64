package model

import "context"

// RunStatus is the lifecycle status of a run as reported by the platform.
type RunStatus string

const (
	RunStatusPending            RunStatus = "pending"
	RunStatusPlanning           RunStatus = "planning"
	RunStatusPlanned            RunStatus = "planned"
	RunStatusConfirmed          RunStatus = "confirmed"
	RunStatusApplying           RunStatus = "applying"
	RunStatusApplied            RunStatus = "applied"
	RunStatusPlannedAndFinished RunStatus = "planned_and_finished"
	RunStatusErrored            RunStatus = "errored"
	RunStatusDiscarded          RunStatus = "discarded"
	RunStatusCanceled           RunStatus = "canceled"
)

// Finished reports whether the run reached a terminal success status.
// Only planned_and_finished and applied qualify; error and cancel states
// are not recognized as terminal and keep the poll loop going.
func (s RunStatus) Finished() bool {
	return s == RunStatusPlannedAndFinished || s == RunStatusApplied
}

// Run represents a plan/apply execution of a configuration version.
type Run struct {
	ID      string
	Status  RunStatus
	Message string
}

// Operation-scoped options and functional option types.
type RunCreateOptions struct {
	// Message is the human-readable run message shown on the platform.
	Message string
	// Destroy plans the destruction of managed infrastructure instead of an update.
	Destroy bool
}

type RunCreateOption func(*RunCreateOptions)

// Option helpers
func WithRunMessage(message string) RunCreateOption {
	return func(o *RunCreateOptions) { o.Message = message }
}
func WithRunDestroy() RunCreateOption {
	return func(o *RunCreateOptions) { o.Destroy = true }
}

// RunPort is an interface (domain port) for run operations on the remote platform.
type RunPort interface {
	RunCreate(ctx context.Context, workspace *Workspace, opts ...RunCreateOption) (*Run, error)
	RunGet(ctx context.Context, id string) (*Run, error)
}
