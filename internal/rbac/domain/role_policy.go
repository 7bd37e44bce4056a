package domain

import "time"

// RolePolicy associates a policy with a role. Pairs are logically unique;
// assigning the same policy twice is idempotent.
type RolePolicy struct {
	RoleID    string
	PolicyID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
