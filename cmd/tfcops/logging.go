package main

import (
	"context"
	"time"

	"github.com/tfcops/tfcops/internal/logging"
)

// withCmdRunLogger wraps a CLI command run in paired start/end log lines.
// It attaches the resource ID to the context logger and returns the new
// context plus a cleanup function recording the outcome and elapsed time.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "run.start", workspaceName)
//	defer func() { cleanup(err) }()
//
// Message format:
// - Start:   CMD:<operation>/S
// - Success: CMD:<operation>/EOK  (err, elapsed attributes)
// - Failure: CMD:<operation>/EFAIL (err, elapsed attributes)
//
// All lines use INFO level. Error text is truncated to keep lines greppable.
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "CMD:"+operation+"/EOK", "err", "", "elapsed", elapsed)
			return
		}
		errStr := err.Error()
		if len(errStr) > 32 {
			errStr = errStr[:32] + "..."
		}
		logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", errStr, "elapsed", elapsed)
	}

	return ctx, cleanup
}
