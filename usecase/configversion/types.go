package configversion

import (
	"time"

	"github.com/tfcops/tfcops/domain/model"
)

// Ports holds domain ports needed for configuration version use cases.
type Ports struct {
	ConfigVersion model.ConfigurationVersionPort
}

// UseCase wires ports and the upload retry policy for configuration version use cases.
type UseCase struct {
	Ports *Ports
	// RetryDuration is the fixed delay between upload status checks.
	RetryDuration time.Duration
	// RetryLimit caps the number of re-checks after the initial one.
	RetryLimit int
}
