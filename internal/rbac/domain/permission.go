package domain

import "time"

// WildcardOperation grants every operation on the permission's resource.
const WildcardOperation = "*"

// Permission represents "operation O on resource R". Operation is a free-form
// case-sensitive string; the literal "*" matches any operation.
type Permission struct {
	ID         string
	ResourceID string
	Operation  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Matches reports whether the permission grants op on the given resource.
func (p Permission) Matches(resourceID, op string) bool {
	if p.ResourceID != resourceID {
		return false
	}
	return p.Operation == op || p.Operation == WildcardOperation
}
