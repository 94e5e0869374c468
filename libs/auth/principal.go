// Package auth defines the authenticated caller identity shared by
// middleware, handlers and services.
package auth

import "slices"

// Role names as stored in the users database and embedded in access tokens.
const (
	RoleStudent   = "Student"
	RoleProfessor = "Professor"
)

// Principal is the authenticated caller: a user ID plus the set of roles
// carried by the access token. It is derived once per request and passed
// explicitly into service calls.
type Principal struct {
	UserID string
	Roles  []string
}

// HasRole reports whether the principal holds the given role
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// IsProfessor reports whether the principal holds the elevated Professor role
func (p Principal) IsProfessor() bool {
	return p.HasRole(RoleProfessor)
}
