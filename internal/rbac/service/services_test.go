package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResourcesServiceCRUD(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.resources.Create(ctx, "tasks", "work items")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := env.resources.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	t.Run("patch keeps omitted fields", func(t *testing.T) {
		desc := "tracked work items"
		patched, err := env.resources.Patch(ctx, created.ID, nil, &desc)
		require.NoError(t, err)
		require.Equal(t, "tasks", patched.Name)
		require.Equal(t, desc, patched.Description)
		require.True(t, patched.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("delete then not found", func(t *testing.T) {
		require.NoError(t, env.resources.Delete(ctx, created.ID))

		_, err := env.resources.Get(ctx, created.ID)
		require.ErrorIs(t, err, ErrResourceNotFound)
		require.ErrorIs(t, env.resources.Delete(ctx, created.ID), ErrResourceNotFound)
	})
}

func TestPermissionsServiceValidatesResource(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.permissions.Create(ctx, "ghost-resource", "read")
	require.ErrorIs(t, err, ErrResourceNotFound)

	res, err := env.resources.Create(ctx, "tasks", "")
	require.NoError(t, err)

	perm, err := env.permissions.Create(ctx, res.ID, "read")
	require.NoError(t, err)

	t.Run("update revalidates the resource", func(t *testing.T) {
		_, err := env.permissions.Update(ctx, perm.ID, "ghost-resource", "read")
		require.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("patch operation only", func(t *testing.T) {
		op := "write"
		patched, err := env.permissions.Patch(ctx, perm.ID, nil, &op)
		require.NoError(t, err)
		require.Equal(t, res.ID, patched.ResourceID)
		require.Equal(t, "write", patched.Operation)
	})
}

func TestPoliciesServiceNormalizesPermissionIDs(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	policy, err := env.policies.Create(ctx, "p", []string{"zzz", "aaa", "zzz", "mmm"})
	require.NoError(t, err)
	require.Equal(t, []string{"aaa", "mmm", "zzz"}, policy.PermissionIDs)

	t.Run("update replaces the association set", func(t *testing.T) {
		updated, err := env.policies.Update(ctx, policy.ID, "p2", []string{"bbb"})
		require.NoError(t, err)
		require.Equal(t, "p2", updated.Name)
		require.Equal(t, []string{"bbb"}, updated.PermissionIDs)
		require.True(t, updated.UpdatedAt.After(policy.UpdatedAt))
	})

	t.Run("patch without ids keeps them", func(t *testing.T) {
		name := "p3"
		patched, err := env.policies.Patch(ctx, policy.ID, &name, nil)
		require.NoError(t, err)
		require.Equal(t, "p3", patched.Name)
		require.Equal(t, []string{"bbb"}, patched.PermissionIDs)
	})

	t.Run("unknown policy", func(t *testing.T) {
		_, err := env.policies.Update(ctx, "nope", "x", nil)
		require.ErrorIs(t, err, ErrPolicyNotFound)
		require.ErrorIs(t, env.policies.Delete(ctx, "nope"), ErrPolicyNotFound)
	})
}

func TestRolesServicePolicyAssignment(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	role, err := env.roles.Create(ctx, "viewer", "acme")
	require.NoError(t, err)
	policy, err := env.policies.Create(ctx, "p", nil)
	require.NoError(t, err)

	t.Run("both ends must exist", func(t *testing.T) {
		require.ErrorIs(t, env.roles.AssignPolicy(ctx, "ghost", policy.ID), ErrRoleNotFound)
		require.ErrorIs(t, env.roles.AssignPolicy(ctx, role.ID, "ghost"), ErrPolicyNotFound)
	})

	t.Run("assign is idempotent", func(t *testing.T) {
		require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, policy.ID))
		require.NoError(t, env.roles.AssignPolicy(ctx, role.ID, policy.ID))

		policies, err := env.roles.ListPolicies(ctx, role.ID)
		require.NoError(t, err)
		require.Len(t, policies, 1)
		require.Equal(t, policy.ID, policies[0].ID)
	})

	t.Run("list skips deleted policies", func(t *testing.T) {
		require.NoError(t, env.policies.Delete(ctx, policy.ID))

		policies, err := env.roles.ListPolicies(ctx, role.ID)
		require.NoError(t, err)
		require.Empty(t, policies)
	})

	t.Run("unassign missing pair", func(t *testing.T) {
		other, err := env.policies.Create(ctx, "other", nil)
		require.NoError(t, err)
		require.ErrorIs(t, env.roles.UnassignPolicy(ctx, role.ID, other.ID), ErrAssignmentNotFound)
	})
}

func TestUserRolesService(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	role, err := env.roles.Create(ctx, "viewer", "acme")
	require.NoError(t, err)

	t.Run("role must exist", func(t *testing.T) {
		_, err := env.userRoles.Assign(ctx, "u1", "ghost", "")
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("empty company inherits from role", func(t *testing.T) {
		grant, err := env.userRoles.Assign(ctx, "u1", role.ID, "")
		require.NoError(t, err)
		require.Equal(t, "acme", grant.CompanyID)
	})

	t.Run("re-assign updates the company", func(t *testing.T) {
		grant, err := env.userRoles.Assign(ctx, "u1", role.ID, "globex")
		require.NoError(t, err)
		require.Equal(t, "globex", grant.CompanyID)

		grants, err := env.userRoles.List(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, grants, 1)
	})

	t.Run("unassign", func(t *testing.T) {
		require.NoError(t, env.userRoles.Unassign(ctx, "u1", role.ID))
		require.ErrorIs(t, env.userRoles.Unassign(ctx, "u1", role.ID), ErrAssignmentNotFound)

		grants, err := env.userRoles.List(ctx, "u1")
		require.NoError(t, err)
		require.Empty(t, grants)
	})
}
