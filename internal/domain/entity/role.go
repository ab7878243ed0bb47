package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular subscriber.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "ADMIN"
)

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
