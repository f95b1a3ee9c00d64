// Package tfcopscfg defines the configuration schema (structs) for tfcops.yml.
// This package is intended for YAML -> struct deserialization; Load applies
// semantic validation on top of decoding.
package tfcopscfg

// Root is the root structure of tfcops.yml.
type Root struct {
	Version string  `yaml:"version"`
	API     API     `yaml:"api"`
	Run     Run     `yaml:"run"`
	Logging Logging `yaml:"logging"`
}

// API represents the connection to the remote platform.
type API struct {
	Address      string `yaml:"address"`      // e.g., "https://app.terraform.io"; empty selects the hosted platform
	Organization string `yaml:"organization"` // organization name
	Token        string `yaml:"token"`        // API token; the TFCOPS_TOKEN environment variable overrides
}

// Run represents run orchestration settings.
type Run struct {
	Workspace     string `yaml:"workspace"`               // default workspace name
	RetryDuration string `yaml:"retryDuration,omitempty"` // delay between upload status checks, e.g., "1s"
	RetryLimit    int    `yaml:"retryLimit,omitempty"`    // cap on status re-checks and run polls
	PollInterval  string `yaml:"pollInterval,omitempty"`  // delay between run status polls, e.g., "60s"
	Message       string `yaml:"message,omitempty"`       // default run message
}

// Logging represents log output settings.
type Logging struct {
	Format string `yaml:"format,omitempty"` // "human", "text", or "json"
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", or "error"
}
