package run

import (
	"context"
	"fmt"
	"time"

	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/internal/logging"
)

// WaitInput carries parameters for UseCase.Wait.
type WaitInput struct {
	// RunID is the platform ID of the run.
	RunID string `json:"run_id"`
}

// WaitOutput wraps the finished run.
type WaitOutput struct {
	Run *model.Run `json:"run"`
}

// Wait polls the run until it reaches a finished state. Each poll fetches the
// run and sleeps for PollInterval when the run is still in flight; after
// RetryLimit polls without a finished status the last observed status is
// reported in the returned error. Error and cancel states are polled like any
// other in-flight status.
func (u *UseCase) Wait(ctx context.Context, in *WaitInput) (*WaitOutput, error) {
	if in == nil || in.RunID == "" {
		return nil, model.ErrRunInvalid
	}
	logger := logging.FromContext(ctx)
	var last model.RunStatus
	for attempt := 1; attempt <= u.RetryLimit; attempt++ {
		r, err := u.Ports.Run.RunGet(ctx, in.RunID)
		if err != nil {
			return nil, fmt.Errorf("failed to check run %s: %w", in.RunID, err)
		}
		if r.Status.Finished() {
			return &WaitOutput{Run: r}, nil
		}
		last = r.Status
		logger.Debug(ctx, "run not finished", "run", in.RunID, "status", last, "attempt", attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(u.PollInterval):
		}
	}
	return nil, &model.RetryLimitError{Op: "run", Attempts: u.RetryLimit, LastStatus: string(last)}
}
