package configversion

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/internal/logging"
)

// PushInput carries the configuration version and the archive to upload.
type PushInput struct {
	// ConfigVersion is the pending entity created beforehand.
	ConfigVersion *model.ConfigurationVersion `json:"config_version"`
	// Content is the packaged configuration archive.
	Content io.Reader `json:"-"`
}

// PushOutput reports the configuration version after processing.
type PushOutput struct {
	// ConfigVersion is the entity in its settled status.
	ConfigVersion *model.ConfigurationVersion `json:"config_version"`
}

// Push uploads the archive and waits for server-side processing to finish.
//
// After the upload the status is checked once, then re-checked up to
// RetryLimit times with a fixed RetryDuration delay while it stays pending.
// A version still pending after the last check fails with a
// model.RetryLimitError; any settled status other than uploaded fails with
// a model.ConfigVersionStatusError.
func (u *UseCase) Push(ctx context.Context, in *PushInput) (*PushOutput, error) {
	if in == nil || in.ConfigVersion == nil || in.ConfigVersion.ID == "" || in.Content == nil {
		return nil, model.ErrConfigVersionInvalid
	}
	if in.ConfigVersion.UploadURL == "" {
		return nil, fmt.Errorf("%w: missing upload URL", model.ErrConfigVersionInvalid)
	}
	logger := logging.FromContext(ctx)

	if err := u.Ports.ConfigVersion.ConfigVersionUpload(ctx, in.ConfigVersion.UploadURL, in.Content); err != nil {
		return nil, fmt.Errorf("failed to upload configuration: %w", err)
	}

	cv, err := u.Ports.ConfigVersion.ConfigVersionGet(ctx, in.ConfigVersion.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check configuration version: %w", err)
	}
	for attempt := 0; cv.Status == model.ConfigVersionStatusPending && attempt < u.RetryLimit; attempt++ {
		logger.Debug(ctx, "configuration version pending", "id", cv.ID, "attempt", attempt+1)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(u.RetryDuration):
		}
		cv, err = u.Ports.ConfigVersion.ConfigVersionGet(ctx, in.ConfigVersion.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check configuration version: %w", err)
		}
	}
	if cv.Status == model.ConfigVersionStatusPending {
		return nil, &model.RetryLimitError{Op: "configuration version", Attempts: u.RetryLimit, LastStatus: string(cv.Status)}
	}
	if !cv.Status.Uploaded() {
		return nil, &model.ConfigVersionStatusError{Status: cv.Status}
	}
	return &PushOutput{ConfigVersion: cv}, nil
}
