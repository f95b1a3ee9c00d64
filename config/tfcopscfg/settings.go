package tfcopscfg

import (
	"fmt"
	"os"
	"time"
)

// Defaults applied when tfcops.yml omits the corresponding fields.
const (
	DefaultRetryDuration = time.Second
	DefaultRetryLimit    = 5
	DefaultPollInterval  = 60 * time.Second
)

// Settings is the resolved runtime configuration derived from Root, with
// defaults applied and durations parsed. Address stays empty when unset;
// the API client substitutes the hosted platform endpoint.
type Settings struct {
	Address       string
	Organization  string
	Token         string
	Workspace     string
	RetryDuration time.Duration
	RetryLimit    int
	PollInterval  time.Duration
	Message       string
	LogFormat     string
	LogLevel      string
}

// ToSettings resolves the configuration into runtime settings. The
// TFCOPS_TOKEN environment variable takes precedence over api.token.
func (r *Root) ToSettings() (*Settings, error) {
	s := &Settings{
		Address:       r.API.Address,
		Organization:  r.API.Organization,
		Token:         r.API.Token,
		Workspace:     r.Run.Workspace,
		RetryDuration: DefaultRetryDuration,
		RetryLimit:    DefaultRetryLimit,
		PollInterval:  DefaultPollInterval,
		Message:       r.Run.Message,
		LogFormat:     r.Logging.Format,
		LogLevel:      r.Logging.Level,
	}
	if v := os.Getenv("TFCOPS_TOKEN"); v != "" {
		s.Token = v
	}
	if r.Run.RetryDuration != "" {
		d, err := time.ParseDuration(r.Run.RetryDuration)
		if err != nil {
			return nil, fmt.Errorf("failed to parse retryDuration: %w", err)
		}
		s.RetryDuration = d
	}
	if r.Run.RetryLimit > 0 {
		s.RetryLimit = r.Run.RetryLimit
	}
	if r.Run.PollInterval != "" {
		d, err := time.ParseDuration(r.Run.PollInterval)
		if err != nil {
			return nil, fmt.Errorf("failed to parse pollInterval: %w", err)
		}
		s.PollInterval = d
	}
	return s, nil
}
