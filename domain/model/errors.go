package model

import (
	"errors"
	"fmt"
)

var (
	ErrWorkspaceInvalid     = errors.New("workspace invalid")
	ErrWorkspaceNotFound    = errors.New("workspace not found")
	ErrConfigVersionInvalid = errors.New("configuration version invalid")
	ErrConfigVersionMissing = errors.New("no configuration version in response")
	ErrRunInvalid           = errors.New("run invalid")
	ErrRunMissing           = errors.New("no run in response")
)

// RetryLimitError reports a bounded status poll that exhausted its configured attempts.
type RetryLimitError struct {
	Op         string // polled resource, e.g. "configuration version" or "run"
	Attempts   int    // configured attempt limit
	LastStatus string // status observed on the final check
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("%s still %s after %d attempts", e.Op, e.LastStatus, e.Attempts)
}

// ConfigVersionStatusError reports a configuration version that settled in a
// status other than uploaded.
type ConfigVersionStatusError struct {
	Status ConfigVersionStatus
}

func (e *ConfigVersionStatusError) Error() string {
	return fmt.Sprintf("configuration version has invalid status %q", e.Status)
}
