package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Role is the closed set of access levels used for route gating.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleSales    Role = "Sales"
	RoleCustomer Role = "Customer"
)

// Valid reports whether the role is a known access level.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleCustomer:
		return true
	}
	return false
}

// User is a login account. Customer-role accounts carry a link to the
// customers table established at registration time.
type User struct {
	bun.BaseModel `bun:"table:users"`

	ID             int64     `bun:"id,pk,autoincrement"`
	FirstName      string    `bun:"firstName,notnull"`
	LastName       string    `bun:"lastName,notnull"`
	Email          string    `bun:"email,notnull,unique"`
	PasswordHash   string    `bun:"passwordHash,notnull"`
	Role           Role      `bun:"role,notnull"`
	OfficeCode     string    `bun:"officeCode"`
	JobTitle       string    `bun:"jobTitle"`
	CustomerNumber *int64    `bun:"customerNumber"`
	CreatedAt      time.Time `bun:"createdAt,nullzero,notnull,default:CURRENT_TIMESTAMP"`
}
