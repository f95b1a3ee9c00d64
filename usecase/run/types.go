package run

import (
	"time"

	"github.com/tfcops/tfcops/domain/model"
	"github.com/tfcops/tfcops/usecase/configversion"
	"github.com/tfcops/tfcops/usecase/workspace"
)

// Ports holds domain ports needed for run use cases.
type Ports struct {
	Run model.RunPort
}

// UseCase wires ports, collaborating use cases, and the poll policy for run use cases.
type UseCase struct {
	Ports *Ports
	// Workspaces resolves workspace names. Used by Start.
	Workspaces *workspace.UseCase
	// ConfigVersions creates and pushes configuration versions. Used by Start.
	ConfigVersions *configversion.UseCase
	// PollInterval is the fixed delay between run status polls.
	PollInterval time.Duration
	// RetryLimit caps the number of status polls.
	RetryLimit int
}
