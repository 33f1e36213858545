package entity

// Role describes the authorization level of a user account.
type Role string

const (
	// RoleGeneral is the default role assigned to every signed-in user.
	RoleGeneral Role = "GENERAL"
	// RoleAdmin gates every catalog-mutating endpoint.
	RoleAdmin Role = "ADMIN"
)

// IsAdmin reports whether the role grants catalog write access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
