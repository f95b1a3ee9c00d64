package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LogFile resolves the destination for structured log output.
type LogFile struct {
	Path   string   // Full path to the log file (empty if stderr or disabled)
	file   *os.File // Opened file handle (nil if stderr or disabled)
	writer io.Writer
}

// NewLogFile opens the log destination named by output.
//
// Output behavior:
//   - empty or "-": use os.Stderr
//   - "none": disable logging (io.Discard)
//   - path: append to the given file, creating parent directories
func NewLogFile(output string) (*LogFile, error) {
	lf := &LogFile{}

	switch strings.ToLower(output) {
	case "none":
		lf.writer = io.Discard
		return lf, nil
	case "", "-":
		lf.writer = os.Stderr
		return lf, nil
	}

	lf.Path = output

	dir := filepath.Dir(lf.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", dir, err)
	}

	f, err := os.OpenFile(lf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file %q: %w", lf.Path, err)
	}

	lf.file = f
	lf.writer = f
	return lf, nil
}

// Writer returns the io.Writer for log output.
func (lf *LogFile) Writer() io.Writer {
	return lf.writer
}

// Close closes the log file if it was opened.
func (lf *LogFile) Close() error {
	if lf.file != nil {
		return lf.file.Close()
	}
	return nil
}
