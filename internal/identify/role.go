package identify

import (
	"fmt"
	"strings"
)

// Role selects which knowledge table accompanies an identification.
type Role string

const (
	RoleNone       Role = ""
	RoleFarmer     Role = "farmer"
	RoleEnthusiast Role = "enthusiast"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleFarmer, RoleEnthusiast}

// ParseRole accepts "farmer", "enthusiast", its alias "normal", or an empty
// string for no selection.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RoleNone, nil
	case "farmer":
		return RoleFarmer, nil
	case "enthusiast", "normal":
		return RoleEnthusiast, nil
	}
	return RoleNone, &ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q", s)}
}

// Label is the role's display text.
func (r Role) Label() string {
	switch r {
	case RoleFarmer:
		return "Farmer - Get growing tips"
	case RoleEnthusiast:
		return "Enthusiast - Get nutrition info"
	}
	return "No role"
}

// WantsGrowing reports whether the role is served the growing parameters.
// An unset role falls back to the growing table.
func (r Role) WantsGrowing() bool {
	return r != RoleEnthusiast
}
