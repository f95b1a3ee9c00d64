package run

import (
	"context"
	"fmt"

	"github.com/tfcops/tfcops/domain/model"
)

// CreateInput carries parameters for UseCase.Create.
type CreateInput struct {
	// Workspace is the resolved target workspace.
	Workspace *model.Workspace `json:"workspace"`
	// Identifier tags the run message with a caller-supplied marker
	// such as a commit hash or job ID.
	Identifier string `json:"identifier,omitempty"`
	// Message overrides the default run message.
	Message string `json:"message,omitempty"`
	// Destroy requests a destroy run instead of a standard plan/apply run.
	Destroy bool `json:"destroy,omitempty"`
}

// CreateOutput wraps the queued run.
type CreateOutput struct {
	Run *model.Run `json:"run"`
}

// Create queues a run for the workspace and returns it as reported by the
// creation response, without waiting for the run to progress.
func (u *UseCase) Create(ctx context.Context, in *CreateInput) (*CreateOutput, error) {
	if in == nil || in.Workspace == nil || in.Workspace.ID == "" {
		return nil, model.ErrRunInvalid
	}
	opts := []model.RunCreateOption{
		model.WithRunMessage(runMessage(in.Message, in.Identifier)),
	}
	if in.Destroy {
		opts = append(opts, model.WithRunDestroy())
	}
	r, err := u.Ports.Run.RunCreate(ctx, in.Workspace, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to request run: %w", err)
	}
	return &CreateOutput{Run: r}, nil
}

// runMessage builds the run message, appending the identifier when present.
func runMessage(message, identifier string) string {
	if message == "" {
		message = "Queued by tfcops"
	}
	if identifier == "" {
		return message
	}
	return fmt.Sprintf("%s (%s)", message, identifier)
}
