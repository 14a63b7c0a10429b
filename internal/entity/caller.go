package entity

import (
	"github.com/google/uuid"
)

// Role is supplied per request by the identity collaborator. The core trusts
// it and enforces ownership/role checks itself.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Caller identifies who is performing an operation.
type Caller struct {
	UserID uuid.UUID
	Role   Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccess reports whether the caller may read or settle the given order:
// the owner always can, administrators always can.
func (c Caller) CanAccess(order *Order) bool {
	return c.IsAdmin() || (order != nil && order.UserID == c.UserID)
}
