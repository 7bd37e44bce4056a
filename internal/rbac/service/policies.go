package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/idx"
)

type PoliciesService struct {
	Store store.Store

	// Aggregator is notified after mutations so cached permission sets are
	// refreshed promptly. Correctness never depends on it; the lazy version
	// tokens catch stale entries regardless.
	Aggregator *PermissionAggregator
}

// Create inserts a policy and its permission associations atomically.
// Permission ids are NOT validated against the permissions table: a policy
// may be written before its permissions, and deleted permissions leave
// dangling ids behind anyway. Readers filter those at evaluation time.
func (s *PoliciesService) Create(ctx context.Context, name string, permissionIDs []string) (domain.Policy, error) {
	p := domain.Policy{
		ID:            idx.New().String(),
		Name:          name,
		PermissionIDs: normalizePermissionIDs(permissionIDs),
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Policies().CreatePolicy(ctx, p)
	})
	if err != nil {
		return domain.Policy{}, fmt.Errorf("create policy: %w", err)
	}
	return s.Get(ctx, p.ID)
}

func (s *PoliciesService) Get(ctx context.Context, id string) (domain.Policy, error) {
	p, err := s.Store.Policies().GetPolicyByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Policy{}, ErrPolicyNotFound
	}
	return p, err
}

func (s *PoliciesService) List(ctx context.Context) ([]domain.Policy, error) {
	return s.Store.Policies().ListPolicies(ctx)
}

// Update replaces the policy's name and permission associations atomically
// and bumps updated_at, which is what flips the aggregator version tokens.
func (s *PoliciesService) Update(ctx context.Context, id, name string, permissionIDs []string) (domain.Policy, error) {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Policies().UpdatePolicy(ctx, domain.Policy{
			ID:            id,
			Name:          name,
			PermissionIDs: normalizePermissionIDs(permissionIDs),
		})
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Policy{}, ErrPolicyNotFound
	}
	if err != nil {
		return domain.Policy{}, fmt.Errorf("update policy: %w", err)
	}
	if s.Aggregator != nil {
		s.Aggregator.Invalidate(id)
	}
	return s.Get(ctx, id)
}

// Patch updates only the provided fields. A non-nil permissionIDs replaces
// the association set wholesale; there is no per-id add/remove.
func (s *PoliciesService) Patch(ctx context.Context, id string, name *string, permissionIDs []string) (domain.Policy, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Policy{}, err
	}
	if name != nil {
		current.Name = *name
	}
	if permissionIDs != nil {
		current.PermissionIDs = permissionIDs
	}
	return s.Update(ctx, id, current.Name, current.PermissionIDs)
}

// Delete removes the policy and its permission associations. Role
// associations pointing at it are left behind and skipped at evaluation time.
func (s *PoliciesService) Delete(ctx context.Context, id string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Policies().DeletePolicy(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrPolicyNotFound
	}
	if err != nil {
		return err
	}
	if s.Aggregator != nil {
		s.Aggregator.Invalidate(id)
	}
	return nil
}

// normalizePermissionIDs sorts and dedupes so the stored association set is
// canonical no matter how the request ordered it.
func normalizePermissionIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
