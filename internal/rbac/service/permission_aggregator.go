package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/metrics"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/slogx"
)

// DefaultCacheSize bounds the aggregator caches when no size is configured.
const DefaultCacheSize = 1024

// PermissionAggregator resolves the permission set a policy grants.
//
// Staleness is detected lazily: every read re-derives a version token from
// the policy's and its permissions' updated_at timestamps and compares it
// against the cached entry. There is no push-based invalidation channel.
// Entries are replaced atomically; two goroutines missing on the same key may
// both recompute, which wastes a little work but never yields a wrong result.
type PermissionAggregator struct {
	store store.Store
	cache *lru.Cache[string, permissionSet]
}

type permissionSet struct {
	token       string
	permissions []domain.Permission
}

func NewPermissionAggregator(st store.Store, cacheSize int) *PermissionAggregator {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[string, permissionSet](cacheSize)
	return &PermissionAggregator{store: st, cache: cache}
}

// PermissionsOf returns the permissions granted by the policy, in ascending
// permission id order. Permission ids that no longer resolve are dropped and
// logged; they are a data-quality warning, not an error. A missing policy
// returns ErrPolicyNotFound so callers holding a dangling policy reference
// can apply the same tolerant treatment.
func (a *PermissionAggregator) PermissionsOf(ctx context.Context, policyID string) ([]domain.Permission, error) {
	policy, err := a.store.Policies().GetPolicyByID(ctx, policyID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load policy %s: %w", policyID, err)
	}

	perms, err := a.store.Permissions().GetPermissionsByIDs(ctx, policy.PermissionIDs)
	if err != nil {
		return nil, fmt.Errorf("load permissions of policy %s: %w", policyID, err)
	}

	if dropped := len(policy.PermissionIDs) - len(perms); dropped > 0 {
		metrics.DanglingReferences.Add(float64(dropped))
		slogx.FromContext(ctx).Warn("policy references missing permissions",
			"policy_id", policyID,
			"missing", dropped,
		)
	}

	token := permissionSetToken(policy, perms)
	if entry, ok := a.cache.Get(policyID); ok && entry.token == token {
		metrics.CacheLookups.WithLabelValues("policy", "hit").Inc()
		return entry.permissions, nil
	}

	metrics.CacheLookups.WithLabelValues("policy", "miss").Inc()
	a.cache.Add(policyID, permissionSet{token: token, permissions: perms})
	return perms, nil
}

// Invalidate drops the cache entry for a policy. Mutation paths call this as
// a courtesy; correctness never depends on it thanks to the lazy tokens.
func (a *PermissionAggregator) Invalidate(policyID string) {
	a.cache.Remove(policyID)
}

// permissionSetToken derives the version token for a resolved policy: the
// policy's updated_at plus every constituent permission's id and updated_at.
// Any committed mutation of the policy or its permissions changes the token.
func permissionSetToken(policy domain.Policy, perms []domain.Permission) string {
	var b strings.Builder
	b.WriteString(policy.UpdatedAt.UTC().Format(tokenTimeLayout))
	for _, p := range perms {
		b.WriteByte('\n')
		b.WriteString(p.ID)
		b.WriteByte('@')
		b.WriteString(p.UpdatedAt.UTC().Format(tokenTimeLayout))
	}
	return b.String()
}

// tokenTimeLayout keeps nanosecond precision so writes within the same
// second still produce distinct tokens.
const tokenTimeLayout = "2006-01-02T15:04:05.999999999Z07:00"
