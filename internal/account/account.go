package account

import "strings"

// Role is the account type issued by the identity provider.
type Role string

const (
	RoleIndividual Role = "INDIVIDUAL"
	RoleBusiness   Role = "BUSINESS"
	RoleCollector  Role = "COLLECTOR"
)

// ParseRole normalizes a user type claim. Empty or unknown values fall back
// to RoleIndividual.
func ParseRole(s string) Role {
	switch r := Role(strings.ToUpper(strings.TrimSpace(s))); r {
	case RoleBusiness, RoleCollector, RoleIndividual:
		return r
	}

	return RoleIndividual
}

// CanSell reports whether the role may list products on the marketplace.
func (r Role) CanSell() bool {
	return r == RoleIndividual || r == RoleCollector
}

// Identity is the authenticated caller. It is passed explicitly into every
// service call.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}

// User is the subset of the users table the dashboard needs.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Points int
}
