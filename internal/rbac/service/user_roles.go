package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
)

// UserRolesService manages user→role grants. Users themselves are not stored
// records; any non-empty user id is acceptable.
type UserRolesService struct {
	Store store.Store
}

// Assign grants a role to a user. The role must exist; an empty companyID
// inherits the role's own company scoping. Re-assigning an existing pair
// updates the company and succeeds.
func (s *UserRolesService) Assign(ctx context.Context, userID, roleID, companyID string) (domain.UserRole, error) {
	role, err := s.Store.Roles().GetRoleByID(ctx, roleID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.UserRole{}, ErrRoleNotFound
	}
	if err != nil {
		return domain.UserRole{}, err
	}

	if companyID == "" {
		companyID = role.CompanyID
	}

	ur := domain.UserRole{UserID: userID, RoleID: roleID, CompanyID: companyID}
	if err := s.Store.UserRoles().Assign(ctx, ur); err != nil {
		return domain.UserRole{}, fmt.Errorf("assign role %s to user %s: %w", roleID, userID, err)
	}

	grants, err := s.Store.UserRoles().ListByUser(ctx, userID)
	if err != nil {
		return domain.UserRole{}, err
	}
	for _, g := range grants {
		if g.RoleID == roleID {
			return g, nil
		}
	}
	return ur, nil
}

// List returns all role grants for a user ordered by role id.
func (s *UserRolesService) List(ctx context.Context, userID string) ([]domain.UserRole, error) {
	return s.Store.UserRoles().ListByUser(ctx, userID)
}

// Unassign revokes a user's role grant.
func (s *UserRolesService) Unassign(ctx context.Context, userID, roleID string) error {
	err := s.Store.UserRoles().Unassign(ctx, userID, roleID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAssignmentNotFound
	}
	return err
}
