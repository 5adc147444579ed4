package session

// Role is the closed set of access levels.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleFamily Role = "Family"
	RoleGuest  Role = "Guest"
)

// ParseRole maps a server-provided role string to the closed set.
// Anything unrecognized degrades to Guest (read-only).
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleFamily:
		return RoleFamily
	default:
		return RoleGuest
	}
}

// CanEdit reports whether the role may create, update, or delete items.
// This is the single capability check; views must not compare role strings.
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleFamily
}
