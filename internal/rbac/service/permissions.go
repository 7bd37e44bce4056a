package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/idx"
)

type PermissionsService struct {
	Store store.Store
}

// Create inserts a permission after checking the referenced resource exists.
// Duplicate (resource, operation) pairs are allowed; evaluation treats them
// as equivalent.
func (s *PermissionsService) Create(ctx context.Context, resourceID, operation string) (domain.Permission, error) {
	if err := s.requireResource(ctx, resourceID); err != nil {
		return domain.Permission{}, err
	}

	p := domain.Permission{
		ID:         idx.New().String(),
		ResourceID: resourceID,
		Operation:  operation,
	}
	if err := s.Store.Permissions().CreatePermission(ctx, p); err != nil {
		return domain.Permission{}, fmt.Errorf("create permission: %w", err)
	}
	return s.Get(ctx, p.ID)
}

func (s *PermissionsService) Get(ctx context.Context, id string) (domain.Permission, error) {
	p, err := s.Store.Permissions().GetPermissionByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Permission{}, ErrPermissionNotFound
	}
	return p, err
}

func (s *PermissionsService) List(ctx context.Context) ([]domain.Permission, error) {
	return s.Store.Permissions().ListPermissions(ctx)
}

func (s *PermissionsService) Update(ctx context.Context, id, resourceID, operation string) (domain.Permission, error) {
	if err := s.requireResource(ctx, resourceID); err != nil {
		return domain.Permission{}, err
	}

	err := s.Store.Permissions().UpdatePermission(ctx, domain.Permission{
		ID:         id,
		ResourceID: resourceID,
		Operation:  operation,
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Permission{}, ErrPermissionNotFound
	}
	if err != nil {
		return domain.Permission{}, fmt.Errorf("update permission: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *PermissionsService) Patch(ctx context.Context, id string, resourceID, operation *string) (domain.Permission, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Permission{}, err
	}
	if resourceID != nil {
		current.ResourceID = *resourceID
	}
	if operation != nil {
		current.Operation = *operation
	}
	return s.Update(ctx, id, current.ResourceID, current.Operation)
}

// Delete removes the permission. Policies referencing it keep the dangling
// id; the aggregators filter it out at evaluation time.
func (s *PermissionsService) Delete(ctx context.Context, id string) error {
	err := s.Store.Permissions().DeletePermission(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPermissionNotFound
	}
	return err
}

func (s *PermissionsService) requireResource(ctx context.Context, resourceID string) error {
	_, err := s.Store.Resources().GetResourceByID(ctx, resourceID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrResourceNotFound
	}
	return err
}
