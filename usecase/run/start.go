package run

import (
	"context"
	"io"

	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/internal/logging"
	"github.com/tfcops/tfcops/usecase/configversion"
	"github.com/tfcops/tfcops/usecase/workspace"
)

// StartInput carries parameters for UseCase.Start.
type StartInput struct {
	// Organization is the organization owning the workspace.
	Organization string `json:"organization"`
	// Workspace is the workspace name.
	Workspace string `json:"workspace"`
	// Content is the configuration bundle to upload.
	Content io.Reader `json:"-"`
	// Identifier tags the run message with a caller-supplied marker.
	Identifier string `json:"identifier,omitempty"`
	// Message overrides the default run message.
	Message string `json:"message,omitempty"`
	// AwaitApply polls the run to a finished state before returning.
	AwaitApply bool `json:"await_apply,omitempty"`
	// Destroy requests a destroy run.
	Destroy bool `json:"destroy,omitempty"`
	// Speculative creates a plan-only configuration version.
	Speculative bool `json:"speculative,omitempty"`
}

// StartOutput reports the queued run and its status at return time.
type StartOutput struct {
	RunID  string          `json:"run_id"`
	Status model.RunStatus `json:"status"`
}

// Start drives a full run: resolve the workspace, create a configuration
// version, upload the bundle, queue the run, and when AwaitApply is set poll
// the run to a finished state. Without AwaitApply the status from the run
// creation response is returned as is.
func (u *UseCase) Start(ctx context.Context, in *StartInput) (*StartOutput, error) {
	if in == nil || in.Workspace == "" || in.Content == nil {
		return nil, model.ErrRunInvalid
	}
	logger := logging.FromContext(ctx)

	wsOut, err := u.Workspaces.Resolve(ctx, &workspace.ResolveInput{
		Organization: in.Organization,
		Name:         in.Workspace,
	})
	if err != nil {
		return nil, err
	}
	ws := wsOut.Workspace
	logger.Info(ctx, "workspace resolved", "workspace", ws.Name, "id", ws.ID)

	cvOut, err := u.ConfigVersions.Create(ctx, &configversion.CreateInput{
		Workspace:   ws,
		Speculative: in.Speculative,
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "configuration version created", "id", cvOut.ConfigVersion.ID)

	pushOut, err := u.ConfigVersions.Push(ctx, &configversion.PushInput{
		ConfigVersion: cvOut.ConfigVersion,
		Content:       in.Content,
	})
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "configuration uploaded", "id", pushOut.ConfigVersion.ID, "status", pushOut.ConfigVersion.Status)

	runOut, err := u.Create(ctx, &CreateInput{
		Workspace:  ws,
		Identifier: in.Identifier,
		Message:    in.Message,
		Destroy:    in.Destroy,
	})
	if err != nil {
		return nil, err
	}
	r := runOut.Run
	logger.Info(ctx, "run created", "run", r.ID, "status", r.Status)

	if !in.AwaitApply {
		return &StartOutput{RunID: r.ID, Status: r.Status}, nil
	}

	waitOut, err := u.Wait(ctx, &WaitInput{RunID: r.ID})
	if err != nil {
		return nil, err
	}
	return &StartOutput{RunID: waitOut.Run.ID, Status: waitOut.Run.Status}, nil
}
