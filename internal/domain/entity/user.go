// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can authenticate and, once subscribed, store videos.
type User struct {
	ID           int64     // Assigned by the store at creation, immutable.
	Email        string    // Login key, unique across users.
	PasswordHash string    // bcrypt hash; never serialized to clients.
	Role         Role      // USER or ADMIN.
	IsActive     bool      // Entitlement flag, flipped to true by a completed checkout.
	CreatedAt    time.Time // Immutable creation timestamp.
}

// MaxPasswordBytes is the longest password bcrypt will hash; it counts bytes, not runes.
const MaxPasswordBytes = 72

// Identity is what an authenticated request carries: who the caller is and their role.
// Entitlement is deliberately absent; it is re-read from the store when needed.
type Identity struct {
	UserID int64
	Role   Role
}

// UserCounts summarizes the user table.
type UserCounts struct {
	Total  int64
	Active int64
}

// Inactive is the number of users without an entitlement.
func (c UserCounts) Inactive() int64 {
	return c.Total - c.Active
}

// NewUser builds an inactive user with the given role.
func NewUser(email, passwordHash string, role Role) *User {
	if !role.IsValid() {
		role = RoleUser
	}

	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     false,
	}
}

// Identity projects the user onto the request identity.
func (u *User) Identity() *Identity {
	return &Identity{UserID: u.ID, Role: u.Role}
}
