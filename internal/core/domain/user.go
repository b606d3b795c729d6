package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the marketplace role attached to an identity.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
	RoleAdmin  Role = "ADMIN"
)

// User mirrors the identity-provider record this service reads and, on
// successful registration, promotes to SELLER.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSeller reports whether the user already carries the seller role.
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
