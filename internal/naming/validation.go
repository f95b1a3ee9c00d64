package naming

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	workspaceNameMaxLength    = 90
	organizationNameMaxLength = 60
)

func validateAPIName(name string, maximum int, kind string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if len(name) > maximum {
		return fmt.Errorf("%s name exceeds %d characters", kind, maximum)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s name %q must not contain whitespace", kind, name)
	}
	return nil
}

// ValidateWorkspaceName checks a workspace name before it is used in an API path.
func ValidateWorkspaceName(name string) error {
	return validateAPIName(name, workspaceNameMaxLength, "workspace")
}

// ValidateOrganizationName checks an organization name before it is used in an API path.
func ValidateOrganizationName(name string) error {
	return validateAPIName(name, organizationNameMaxLength, "organization")
}
