package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/metrics"
	"github.com/pmguardian/guardian/pkg/slogx"
)

// Authorizer is the evaluation pipeline: it answers "can user U perform
// operation O on resource R?" with a decision and an auditable reason.
//
// Evaluation is a pure read path. It never mutates records, so any number of
// evaluations may run concurrently, and an abandoned evaluation leaves
// nothing to roll back. Repeated evaluations against unchanged data produce
// an identical decision and reason string: roles are scanned in ascending
// role id order and permissions within a role in ascending permission id
// order (ties broken by ascending policy id).
type Authorizer struct {
	Resources *ResourceResolver
	Identity  IdentityResolver
	Roles     *RoleAggregator
}

// Evaluate runs the pipeline. It returns an error only when the input is
// invalid (ErrInvalidRequest), the resource reference cannot be resolved
// (ErrResourceNotFound), or a backend failed; a backend failure is never
// converted into a denial, since denying when the true answer is unknown
// would poison audit trails.
func (a *Authorizer) Evaluate(ctx context.Context, userID, resourceRef, operation string) (domain.Decision, error) {
	if strings.TrimSpace(userID) == "" ||
		strings.TrimSpace(resourceRef) == "" ||
		strings.TrimSpace(operation) == "" {
		return domain.Decision{}, fmt.Errorf("%w: user_id, resource and operation are required", ErrInvalidRequest)
	}

	start := time.Now()
	defer func() {
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	}()

	// Stage 1: canonicalize the resource reference.
	resource, err := a.Resources.Resolve(ctx, resourceRef)
	if err != nil {
		return domain.Decision{}, err
	}

	// Stage 2: resolve the user's roles. Resources carry no company scoping,
	// so the resolver decides which companies' grants apply.
	roles, err := a.Identity.RolesOf(ctx, userID, "")
	if err != nil {
		return domain.Decision{}, fmt.Errorf("resolve roles of user %s: %w", userID, err)
	}
	if len(roles) == 0 {
		return a.deny(ctx, userID, "user has no assigned roles"), nil
	}

	// The store-backed resolver returns roles ordered, but the interface
	// doesn't promise it; sort so decisions stay reproducible with any
	// resolver implementation.
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })

	// Stages 3-5: per role, fetch the effective permission set, then match.
	// All blocking I/O happens in PermissionsForRole; the match loop itself
	// only compares strings.
	for _, role := range roles {
		grants, err := a.Roles.PermissionsForRole(ctx, role.ID)
		if err != nil {
			return domain.Decision{}, fmt.Errorf("aggregate permissions of role %s: %w", role.ID, err)
		}

		for _, g := range grants {
			if g.Permission.Matches(resource.ID, operation) {
				decision := domain.Decision{
					Granted: true,
					Reason: fmt.Sprintf("granted via role %s, policy %s, permission %s",
						role.ID, g.PolicyID, g.Permission.ID),
				}
				metrics.RecordDecision(true)
				slogx.FromContext(ctx).Info("access granted",
					"user_id", userID,
					"resource", resourceRef,
					"operation", operation,
					"reason", decision.Reason,
				)
				return decision, nil
			}
		}
	}

	return a.deny(ctx, userID,
		fmt.Sprintf("no policy grants operation '%s' on resource '%s'", operation, resourceRef)), nil
}

func (a *Authorizer) deny(ctx context.Context, userID, reason string) domain.Decision {
	metrics.RecordDecision(false)
	slogx.FromContext(ctx).Info("access denied", "user_id", userID, "reason", reason)
	return domain.Decision{Granted: false, Reason: reason}
}

// Check adapts Evaluate to the shape the enforcement middleware expects: an
// unresolvable resource is a plain denial there, not an error.
func (a *Authorizer) Check(ctx context.Context, userID, resource, operation string) (bool, string, error) {
	decision, err := a.Evaluate(ctx, userID, resource, operation)
	if errors.Is(err, ErrResourceNotFound) {
		return false, "resource not found", nil
	}
	if err != nil {
		return false, "", err
	}
	return decision.Granted, decision.Reason, nil
}
