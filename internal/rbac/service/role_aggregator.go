package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/metrics"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/slogx"
)

// maxPolicyFanout bounds how many policies are resolved concurrently for a
// single role.
const maxPolicyFanout = 8

// RoleAggregator resolves the effective permission set of a role: the union
// of permissions across all policies assigned to it, with the contributing
// policy kept alongside each permission so decisions can be explained.
//
// The cache uses the same lazy version-token strategy as the permission
// aggregator. The token additionally covers the role's policy associations,
// so assigning or unassigning a policy invalidates the entry even though no
// policy record changed.
type RoleAggregator struct {
	store       store.Store
	permissions *PermissionAggregator
	cache       *lru.Cache[string, grantSet]
}

type grantSet struct {
	token  string
	grants []domain.Grant
}

func NewRoleAggregator(st store.Store, permissions *PermissionAggregator, cacheSize int) *RoleAggregator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[string, grantSet](cacheSize)
	return &RoleAggregator{store: st, permissions: permissions, cache: cache}
}

// PermissionsForRole returns the role's effective permission set ordered by
// (permission id, policy id). Duplicate permissions reachable through several
// policies collapse to one grant attributed to the lowest policy id, keeping
// repeated evaluations byte-for-byte identical.
func (a *RoleAggregator) PermissionsForRole(ctx context.Context, roleID string) ([]domain.Grant, error) {
	assocs, err := a.store.RolePolicies().ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list policies of role %s: %w", roleID, err)
	}

	// Resolve policies concurrently; results land in per-index slots so the
	// subsequent union is deterministic regardless of completion order.
	resolved := make([][]domain.Permission, len(assocs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPolicyFanout)
	for i, assoc := range assocs {
		g.Go(func() error {
			perms, err := a.permissions.PermissionsOf(gctx, assoc.PolicyID)
			if errors.Is(err, ErrPolicyNotFound) {
				// The policy was deleted out from under the association.
				metrics.DanglingReferences.Inc()
				slogx.FromContext(ctx).Warn("role references missing policy",
					"role_id", roleID,
					"policy_id", assoc.PolicyID,
				)
				return nil
			}
			if err != nil {
				return err
			}
			resolved[i] = perms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Union by permission id. Associations arrive in ascending policy id
	// order, so the first policy seen for a permission is the lowest one.
	seen := make(map[string]struct{})
	var grants []domain.Grant
	for i, assoc := range assocs {
		for _, p := range resolved[i] {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			grants = append(grants, domain.Grant{Permission: p, PolicyID: assoc.PolicyID})
		}
	}

	sort.Slice(grants, func(i, j int) bool {
		if grants[i].Permission.ID != grants[j].Permission.ID {
			return grants[i].Permission.ID < grants[j].Permission.ID
		}
		return grants[i].PolicyID < grants[j].PolicyID
	})

	token := grantSetToken(assocs, grants)
	if entry, ok := a.cache.Get(roleID); ok && entry.token == token {
		metrics.CacheLookups.WithLabelValues("role", "hit").Inc()
		return entry.grants, nil
	}

	metrics.CacheLookups.WithLabelValues("role", "miss").Inc()
	a.cache.Add(roleID, grantSet{token: token, grants: grants})
	return grants, nil
}

// Invalidate drops the cache entry for a role.
func (a *RoleAggregator) Invalidate(roleID string) {
	a.cache.Remove(roleID)
}

// grantSetToken covers the association rows (so assignment changes are
// visible) and every granted permission's updated_at (so nested permission
// or policy edits are too).
func grantSetToken(assocs []domain.RolePolicy, grants []domain.Grant) string {
	var b strings.Builder
	for _, assoc := range assocs {
		b.WriteString(assoc.PolicyID)
		b.WriteByte('@')
		b.WriteString(assoc.UpdatedAt.UTC().Format(tokenTimeLayout))
		b.WriteByte('\n')
	}
	b.WriteByte('|')
	for _, g := range grants {
		b.WriteByte('\n')
		b.WriteString(g.PolicyID)
		b.WriteByte('/')
		b.WriteString(g.Permission.ID)
		b.WriteByte('@')
		b.WriteString(g.Permission.UpdatedAt.UTC().Format(tokenTimeLayout))
	}
	return b.String()
}
