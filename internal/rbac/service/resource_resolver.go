package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
)

// ResourceResolver canonicalizes a resource reference, which may be a
// resource id or a resource name.
type ResourceResolver struct {
	Store store.Store
}

// Resolve tries an exact id lookup first, then a name lookup. The order
// matters and is fixed: when a resource's name collides with another
// resource's id, the id lookup wins.
func (r *ResourceResolver) Resolve(ctx context.Context, ref string) (domain.Resource, error) {
	res, err := r.Store.Resources().GetResourceByID(ctx, ref)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Resource{}, fmt.Errorf("resolve resource by id: %w", err)
	}

	res, err = r.Store.Resources().GetResourceByName(ctx, ref)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Resource{}, fmt.Errorf("resolve resource by name: %w", err)
	}

	return domain.Resource{}, ErrResourceNotFound
}
