package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store/drivers/sqlite"
)

type testEnv struct {
	resources   *ResourcesService
	permissions *PermissionsService
	policies    *PoliciesService
	roles       *RolesService
	userRoles   *UserRolesService
	authorizer  *Authorizer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())

	permAgg := NewPermissionAggregator(st, 0)
	roleAgg := NewRoleAggregator(st, permAgg, 0)

	return &testEnv{
		resources:   &ResourcesService{Store: st},
		permissions: &PermissionsService{Store: st},
		policies:    &PoliciesService{Store: st, Aggregator: permAgg},
		roles:       &RolesService{Store: st, Aggregator: roleAgg},
		userRoles:   &UserRolesService{Store: st},
		authorizer: &Authorizer{
			Resources: &ResourceResolver{Store: st},
			Identity:  &StoreIdentityResolver{Store: st},
			Roles:     roleAgg,
		},
	}
}

// grantChain wires up resource → permission → policy → role → user and
// returns the created records.
func (env *testEnv) grantChain(t *testing.T, userID, resourceName, operation string) (domain.Resource, domain.Permission, domain.Policy, domain.Role) {
	t.Helper()
	ctx := context.Background()

	res, err := env.resources.Create(ctx, resourceName, "")
	require.NoError(t, err)

	perm, err := env.permissions.Create(ctx, res.ID, operation)
	require.NoError(t, err)

	policy, err := env.policies.Create(ctx, resourceName+"-policy", []string{perm.ID})
	require.NoError(t, err)

	role, err := env.roles.Create(ctx, resourceName+"-role", "")
	require.NoError(t, err)
	require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, policy.ID))

	_, err = env.userRoles.Assign(ctx, userID, role.ID, "")
	require.NoError(t, err)

	return res, perm, policy, role
}

func TestEvaluateGrantsThroughRoleChain(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, perm, policy, role := env.grantChain(t, "user-1", "reports", "read")

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, decision.Granted)
	require.Equal(t,
		fmt.Sprintf("granted via role %s, policy %s, permission %s", role.ID, policy.ID, perm.ID),
		decision.Reason,
	)
}

func TestEvaluateDeniesUnmatchedOperation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.grantChain(t, "user-1", "reports", "read")

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
	require.NoError(t, err)
	require.False(t, decision.Granted)
	require.Equal(t, "no policy grants operation 'write' on resource 'reports'", decision.Reason)
}

func TestEvaluateDeniesUserWithoutRoles(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.grantChain(t, "user-1", "reports", "read")

	decision, err := env.authorizer.Evaluate(ctx, "stranger", "reports", "read")
	require.NoError(t, err)
	require.False(t, decision.Granted)
	require.Equal(t, "user has no assigned roles", decision.Reason)
}

func TestEvaluateWildcardOperation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	env.grantChain(t, "admin-1", "reports", domain.WildcardOperation)

	for _, op := range []string{"read", "write", "delete", "anything-at-all"} {
		decision, err := env.authorizer.Evaluate(ctx, "admin-1", "reports", op)
		require.NoError(t, err)
		require.True(t, decision.Granted, "operation %q", op)
	}
}

func TestEvaluateResolvesResourceByIDOrName(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	res, _, _, _ := env.grantChain(t, "user-1", "reports", "read")

	byName, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, byName.Granted)

	byID, err := env.authorizer.Evaluate(ctx, "user-1", res.ID, "read")
	require.NoError(t, err)
	require.True(t, byID.Granted)
}

func TestEvaluateIDLookupWinsOverName(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	target, _, _, _ := env.grantChain(t, "user-1", "reports", "read")

	// A second resource whose name collides with the first one's id. The
	// reference must resolve to the id match, so the user stays granted.
	_, err := env.resources.Create(context.Background(), target.ID, "imposter")
	require.NoError(t, err)

	decision, err := env.authorizer.Evaluate(ctx, "user-1", target.ID, "read")
	require.NoError(t, err)
	require.True(t, decision.Granted)
}

func TestEvaluateUnknownResource(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, err := env.authorizer.Evaluate(context.Background(), "user-1", "nope", "read")
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestEvaluateRejectsBlankInput(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	for _, tc := range []struct{ user, resource, op string }{
		{"", "reports", "read"},
		{"user-1", "  ", "read"},
		{"user-1", "reports", ""},
	} {
		_, err := env.authorizer.Evaluate(ctx, tc.user, tc.resource, tc.op)
		require.ErrorIs(t, err, ErrInvalidRequest)
	}
}

func TestEvaluateSeesMutationsImmediately(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, perm, policy, role := env.grantChain(t, "user-1", "reports", "read")

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, decision.Granted)

	t.Run("permission edit flips the decision", func(t *testing.T) {
		_, err := env.permissions.Update(ctx, perm.ID, perm.ResourceID, "write")
		require.NoError(t, err)

		decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
		require.NoError(t, err)
		require.False(t, decision.Granted)

		decision, err = env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
		require.NoError(t, err)
		require.True(t, decision.Granted)
	})

	t.Run("emptying the policy revokes", func(t *testing.T) {
		_, err := env.policies.Update(ctx, policy.ID, policy.Name, nil)
		require.NoError(t, err)

		decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
		require.NoError(t, err)
		require.False(t, decision.Granted)
	})

	t.Run("restoring the policy re-grants", func(t *testing.T) {
		_, err := env.policies.Update(ctx, policy.ID, policy.Name, []string{perm.ID})
		require.NoError(t, err)

		decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
		require.NoError(t, err)
		require.True(t, decision.Granted)
	})

	t.Run("unassigning the policy from the role revokes", func(t *testing.T) {
		require.NoError(t, env.roles.UnassignPolicy(ctx, role.ID, policy.ID))

		decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
		require.NoError(t, err)
		require.False(t, decision.Granted)
	})
}

func TestEvaluateToleratesDanglingReferences(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	res, perm, policy, _ := env.grantChain(t, "user-1", "reports", "read")

	// A deleted permission inside the policy must not break evaluation of
	// the surviving one.
	extra, err := env.permissions.Create(ctx, res.ID, "write")
	require.NoError(t, err)
	_, err = env.policies.Update(ctx, policy.ID, policy.Name, []string{perm.ID, extra.ID})
	require.NoError(t, err)
	require.NoError(t, env.permissions.Delete(ctx, extra.ID))

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, decision.Granted)

	decision, err = env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
	require.NoError(t, err)
	require.False(t, decision.Granted)
}

func TestEvaluateToleratesDeletedPolicy(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	// Two policies on the same role; deleting one must leave the other
	// effective even though the role association dangles.
	res, _, doomed, role := env.grantChain(t, "user-1", "reports", "read")

	keepPerm, err := env.permissions.Create(ctx, res.ID, "write")
	require.NoError(t, err)
	keeper, err := env.policies.Create(ctx, "keeper", []string{keepPerm.ID})
	require.NoError(t, err)
	require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, keeper.ID))

	require.NoError(t, env.policies.Delete(ctx, doomed.ID))

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "write")
	require.NoError(t, err)
	require.True(t, decision.Granted)

	decision, err = env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.False(t, decision.Granted)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	// Two independent chains both granting the same access. Repeated
	// evaluations must keep returning the identical reason string.
	env.grantChain(t, "user-1", "reports", "read")

	res, err := env.resources.Get(ctx, mustResolve(t, env, "reports").ID)
	require.NoError(t, err)

	perm2, err := env.permissions.Create(ctx, res.ID, "read")
	require.NoError(t, err)
	policy2, err := env.policies.Create(ctx, "second-policy", []string{perm2.ID})
	require.NoError(t, err)
	role2, err := env.roles.Create(ctx, "second-role", "")
	require.NoError(t, err)
	require.NoError(t, env.roles.AssignPolicy(ctx, role2.ID, policy2.ID))
	_, err = env.userRoles.Assign(ctx, "user-1", role2.ID, "")
	require.NoError(t, err)

	first, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, first.Granted)

	for range 5 {
		again, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEvaluateConcurrentWithPolicyMutation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, perm, policy, role := env.grantChain(t, "user-1", "reports", "read")

	grantedReason := fmt.Sprintf("granted via role %s, policy %s, permission %s",
		role.ID, policy.ID, perm.ID)
	deniedReason := "no policy grants operation 'read' on resource 'reports'"

	const (
		readers = 8
		rounds  = 50
	)

	errs := make(chan error, (readers+1)*rounds)
	var wg sync.WaitGroup

	// One writer flips the policy's permission set while the readers
	// evaluate. Every decision must land on one of the two coherent
	// outcomes; anything else means a reader observed a half-replaced
	// cache entry.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range rounds {
			ids := []string{perm.ID}
			if i%2 == 1 {
				ids = nil
			}
			if _, err := env.policies.Update(ctx, policy.ID, policy.Name, ids); err != nil {
				errs <- fmt.Errorf("update policy: %w", err)
			}
		}
	}()

	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
				if err != nil {
					errs <- fmt.Errorf("evaluate: %w", err)
					continue
				}
				if decision.Granted && decision.Reason != grantedReason {
					errs <- fmt.Errorf("incoherent grant reason: %q", decision.Reason)
				}
				if !decision.Granted && decision.Reason != deniedReason {
					errs <- fmt.Errorf("incoherent denial reason: %q", decision.Reason)
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Settle on the granted state; the caches must converge with it.
	_, err := env.policies.Update(ctx, policy.ID, policy.Name, []string{perm.ID})
	require.NoError(t, err)

	decision, err := env.authorizer.Evaluate(ctx, "user-1", "reports", "read")
	require.NoError(t, err)
	require.True(t, decision.Granted)
	require.Equal(t, grantedReason, decision.Reason)
}

func TestCheckAdapterMapsUnknownResourceToDenial(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	granted, reason, err := env.authorizer.Check(context.Background(), "user-1", "missing", "read")
	require.NoError(t, err)
	require.False(t, granted)
	require.Equal(t, "resource not found", reason)
}

func mustResolve(t *testing.T, env *testEnv, ref string) domain.Resource {
	t.Helper()
	res, err := env.authorizer.Resources.Resolve(context.Background(), ref)
	require.NoError(t, err)
	return res
}
