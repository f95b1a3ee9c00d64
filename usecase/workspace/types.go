package workspace

import "github.com/tfcops/tfcops/domain/model"

// Ports holds domain ports needed for workspace use cases.
type Ports struct {
	Workspace model.WorkspacePort
}

// UseCase wires ports needed for workspace use cases.
type UseCase struct {
	Ports *Ports
}
