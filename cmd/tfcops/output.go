package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/tfcops/tfcops/domain/model"
)

// statusColor maps run statuses to display colors: green for finished,
// red for failure states, yellow for anything in flight.
func statusColor(status model.RunStatus) *color.Color {
	switch status {
	case model.RunStatusApplied, model.RunStatusPlannedAndFinished:
		return color.New(color.FgGreen)
	case model.RunStatusErrored, model.RunStatusDiscarded, model.RunStatusCanceled:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// formatRunStatus renders a status value, colored when stdout is a terminal.
func formatRunStatus(status model.RunStatus) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return string(status)
	}
	return statusColor(status).Sprint(string(status))
}

// printRun writes the run ID and its status on one line.
func printRun(w io.Writer, runID string, status model.RunStatus) {
	fmt.Fprintf(w, "run=%s status=%s\n", runID, formatRunStatus(status))
}
