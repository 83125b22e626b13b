package entity

// Role represents the privilege level of a signed-in account.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleAdmin may delete assets, export the inventory and manage roles.
	RoleAdmin Role = "admin"
)

// Roles lists every assignable role.
var Roles = []Role{RoleUser, RoleAdmin}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
