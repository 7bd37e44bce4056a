package domain

import "time"

// Policy is a named bundle of permissions. PermissionIDs may contain
// references to permissions that have since been deleted; readers skip those
// rather than erroring (tolerant-read).
type Policy struct {
	ID            string
	Name          string
	PermissionIDs []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
