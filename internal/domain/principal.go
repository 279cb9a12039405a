package domain

// Role names. Seeded at startup; user role sets only ever contain these.
const (
	RoleAdmin     = "ADMIN"
	RoleOrganizer = "ORGANIZER"
	RoleVolunteer = "VOLUNTEER"
)

// Principal is the authenticated identity resolved for a single request.
// It is built fresh from a verified token subject plus a directory lookup,
// never persisted, and never shared across requests. Roles are re-resolved
// on every request so a stale token cannot carry stale privileges.
type Principal struct {
	ID       int64
	Username string
	Roles    []string
}

// HasRole reports whether the principal holds the named role.
func (p *Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of the named roles.
func (p *Principal) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}
