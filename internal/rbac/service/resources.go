package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/idx"
)

type ResourcesService struct {
	Store store.Store
}

func (s *ResourcesService) Create(ctx context.Context, name, description string) (domain.Resource, error) {
	res := domain.Resource{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
	}
	if err := s.Store.Resources().CreateResource(ctx, res); err != nil {
		return domain.Resource{}, fmt.Errorf("create resource: %w", err)
	}
	// Re-read so the caller sees the store-assigned timestamps.
	return s.Get(ctx, res.ID)
}

func (s *ResourcesService) Get(ctx context.Context, id string) (domain.Resource, error) {
	res, err := s.Store.Resources().GetResourceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Resource{}, ErrResourceNotFound
	}
	return res, err
}

func (s *ResourcesService) List(ctx context.Context) ([]domain.Resource, error) {
	return s.Store.Resources().ListResources(ctx)
}

// Update replaces the mutable fields wholesale (PUT semantics).
func (s *ResourcesService) Update(ctx context.Context, id, name, description string) (domain.Resource, error) {
	err := s.Store.Resources().UpdateResource(ctx, domain.Resource{
		ID:          id,
		Name:        name,
		Description: description,
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Resource{}, ErrResourceNotFound
	}
	if err != nil {
		return domain.Resource{}, fmt.Errorf("update resource: %w", err)
	}
	return s.Get(ctx, id)
}

// Patch updates only the provided fields (PATCH semantics).
func (s *ResourcesService) Patch(ctx context.Context, id string, name, description *string) (domain.Resource, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Resource{}, err
	}
	if name != nil {
		current.Name = *name
	}
	if description != nil {
		current.Description = *description
	}
	return s.Update(ctx, id, current.Name, current.Description)
}

func (s *ResourcesService) Delete(ctx context.Context, id string) error {
	err := s.Store.Resources().DeleteResource(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrResourceNotFound
	}
	return err
}
