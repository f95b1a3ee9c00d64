package model

import (
	"strings"
	"testing"
)

func TestRunStatusFinished(t *testing.T) {
	tests := []struct {
		status RunStatus
		want   bool
	}{
		{RunStatusPlannedAndFinished, true},
		{RunStatusApplied, true},
		{RunStatusPending, false},
		{RunStatusPlanning, false},
		{RunStatusApplying, false},
		{RunStatusErrored, false},
		{RunStatusDiscarded, false},
		{RunStatusCanceled, false},
	}
	for _, tt := range tests {
		if got := tt.status.Finished(); got != tt.want {
			t.Errorf("RunStatus(%q).Finished() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestConfigVersionStatusUploaded(t *testing.T) {
	if !ConfigVersionStatusUploaded.Uploaded() {
		t.Errorf("uploaded status not recognized")
	}
	if ConfigVersionStatusPending.Uploaded() {
		t.Errorf("pending status reported as uploaded")
	}
	if ConfigVersionStatusErrored.Uploaded() {
		t.Errorf("errored status reported as uploaded")
	}
}

func TestRetryLimitErrorMessage(t *testing.T) {
	err := &RetryLimitError{Op: "configuration version", Attempts: 5, LastStatus: "pending"}
	msg := err.Error()
	for _, want := range []string{"configuration version", "still pending", "5 attempts"} {
		if !strings.Contains(msg, want) {
			t.Errorf("RetryLimitError message %q does not contain %q", msg, want)
		}
	}
}

func TestConfigVersionStatusErrorMessage(t *testing.T) {
	err := &ConfigVersionStatusError{Status: ConfigVersionStatusErrored}
	if !strings.Contains(err.Error(), "errored") {
		t.Errorf("ConfigVersionStatusError message %q does not contain the status", err.Error())
	}
}
