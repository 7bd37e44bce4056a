package domain

import "time"

// Resource is a protectable entity class (e.g. "invoice"). Name is unique
// within a company by convention; the evaluation path never assumes global
// uniqueness and resolves ids before names.
type Resource struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
