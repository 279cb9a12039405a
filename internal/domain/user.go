package domain

import "time"

// User is an account in the directory. PasswordHash is a bcrypt hash and
// never leaves the service layer.
type User struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

// Principal derives the request-scoped identity for this user.
func (u *User) Principal() *Principal {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return &Principal{ID: u.ID, Username: u.Username, Roles: roles}
}
