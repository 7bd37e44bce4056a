package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermissionAggregatorOrdersAndFilters(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.resources.Create(ctx, "projects", "")
	require.NoError(t, err)

	read, err := env.permissions.Create(ctx, res.ID, "read")
	require.NoError(t, err)
	write, err := env.permissions.Create(ctx, res.ID, "write")
	require.NoError(t, err)

	policy, err := env.policies.Create(ctx, "p", []string{write.ID, read.ID, "ghost-id"})
	require.NoError(t, err)

	agg := env.policies.Aggregator

	perms, err := agg.PermissionsOf(ctx, policy.ID)
	require.NoError(t, err)
	require.Len(t, perms, 2)
	// ULIDs sort by creation order, so read precedes write.
	require.Equal(t, read.ID, perms[0].ID)
	require.Equal(t, write.ID, perms[1].ID)

	t.Run("missing policy", func(t *testing.T) {
		_, err := agg.PermissionsOf(ctx, "no-such-policy")
		require.ErrorIs(t, err, ErrPolicyNotFound)
	})

	t.Run("cached reads track edits", func(t *testing.T) {
		_, err := agg.PermissionsOf(ctx, policy.ID)
		require.NoError(t, err)

		_, err = env.policies.Update(ctx, policy.ID, "p", []string{read.ID})
		require.NoError(t, err)

		perms, err := agg.PermissionsOf(ctx, policy.ID)
		require.NoError(t, err)
		require.Len(t, perms, 1)
		require.Equal(t, read.ID, perms[0].ID)
	})
}

func TestRoleAggregatorUnionsAcrossPolicies(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.resources.Create(ctx, "projects", "")
	require.NoError(t, err)

	read, err := env.permissions.Create(ctx, res.ID, "read")
	require.NoError(t, err)
	write, err := env.permissions.Create(ctx, res.ID, "write")
	require.NoError(t, err)

	// Both policies grant read; only the second grants write. The shared
	// permission must collapse to a single grant attributed to the lower
	// policy id.
	first, err := env.policies.Create(ctx, "first", []string{read.ID})
	require.NoError(t, err)
	second, err := env.policies.Create(ctx, "second", []string{read.ID, write.ID})
	require.NoError(t, err)

	role, err := env.roles.Create(ctx, "editor", "")
	require.NoError(t, err)
	require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, second.ID))
	require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, first.ID))

	grants, err := env.roles.Aggregator.PermissionsForRole(ctx, role.ID)
	require.NoError(t, err)
	require.Len(t, grants, 2)

	require.Equal(t, read.ID, grants[0].Permission.ID)
	require.Equal(t, first.ID, grants[0].PolicyID)
	require.Equal(t, write.ID, grants[1].Permission.ID)
	require.Equal(t, second.ID, grants[1].PolicyID)

	t.Run("empty for role with no policies", func(t *testing.T) {
		bare, err := env.roles.Create(ctx, "bare", "")
		require.NoError(t, err)

		grants, err := env.roles.Aggregator.PermissionsForRole(ctx, bare.ID)
		require.NoError(t, err)
		require.Empty(t, grants)
	})

	t.Run("unassign shrinks the set", func(t *testing.T) {
		require.NoError(t, env.roles.UnassignPolicy(ctx, role.ID, second.ID))

		grants, err := env.roles.Aggregator.PermissionsForRole(ctx, role.ID)
		require.NoError(t, err)
		require.Len(t, grants, 1)
		require.Equal(t, read.ID, grants[0].Permission.ID)
	})
}

func TestResourceResolver(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	res, err := env.resources.Create(ctx, "boards", "")
	require.NoError(t, err)

	resolver := env.authorizer.Resources

	byID, err := resolver.Resolve(ctx, res.ID)
	require.NoError(t, err)
	require.Equal(t, res.ID, byID.ID)

	byName, err := resolver.Resolve(ctx, "boards")
	require.NoError(t, err)
	require.Equal(t, res.ID, byName.ID)

	_, err = resolver.Resolve(ctx, "unknown")
	require.ErrorIs(t, err, ErrResourceNotFound)

	t.Run("duplicate names resolve to lowest id", func(t *testing.T) {
		dup, err := env.resources.Create(ctx, "boards", "second of the name")
		require.NoError(t, err)
		require.Greater(t, dup.ID, res.ID)

		got, err := resolver.Resolve(ctx, "boards")
		require.NoError(t, err)
		require.Equal(t, res.ID, got.ID)
	})
}
