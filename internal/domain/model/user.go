package model

import "time"

// Role describes the access level of a registered user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps raw input onto the closed role set.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCustomer, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// User represents a registered customer or administrator.
// PasswordHash is populated only on the credential verification path.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
