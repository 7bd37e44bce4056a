package domain

import "time"

// UserRole records that a user holds a role, optionally scoped to a company.
// Users are not modelled as stored entities; this association is the only
// place the service sees them.
type UserRole struct {
	UserID    string
	RoleID    string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
