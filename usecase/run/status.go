package run

import (
	"context"
	"fmt"

	"github.com/tfcops/tfcops/domain/model"
)

// StatusInput carries parameters for UseCase.Status.
type StatusInput struct {
	// RunID is the platform ID of the run.
	RunID string `json:"run_id"`
}

// StatusOutput wraps the fetched run.
type StatusOutput struct {
	Run *model.Run `json:"run"`
}

// Status fetches the current state of a run.
func (u *UseCase) Status(ctx context.Context, in *StatusInput) (*StatusOutput, error) {
	if in == nil || in.RunID == "" {
		return nil, model.ErrRunInvalid
	}
	r, err := u.Ports.Run.RunGet(ctx, in.RunID)
	if err != nil {
		return nil, fmt.Errorf("failed to check run %s: %w", in.RunID, err)
	}
	return &StatusOutput{Run: r}, nil
}
