// Package authorization centralizes the role model and permission checks
// consulted by usecases and HTTP middleware.
package authorization

type UserRole string

const (
	RoleEndUser      UserRole = "end_user"
	RoleSupportAgent UserRole = "support_agent"
	RoleAdmin        UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// IsStaff reports whether the role belongs to support staff (agents and admins).
func (r UserRole) IsStaff() bool {
	return r == RoleSupportAgent || r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleEndUser, RoleSupportAgent, RoleAdmin:
		return true
	}
	return false
}

// ParseUserRole parses a role string, falling back to the least privileged role.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleEndUser
}

// AssignableRoles are the roles a user may request through a role request.
func AssignableRoles() []UserRole {
	return []UserRole{RoleSupportAgent, RoleAdmin}
}
