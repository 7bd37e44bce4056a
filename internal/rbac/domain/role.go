package domain

import "time"

// Role is a named grouping of policies scoped to a company.
type Role struct {
	ID        string
	Name      string
	CompanyID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
