package user

type Role string

// Roles are flat: an admin is not implicitly a host or a guest.
const (
	RoleAdmin Role = "admin"
	RoleHost  Role = "host"
	RoleGuest Role = "guest"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHost, RoleGuest:
		return true
	default:
		return false
	}
}

// CanSelfRegister reports whether the role may be chosen at sign up.
func (r Role) CanSelfRegister() bool {
	return r == RoleHost || r == RoleGuest
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
