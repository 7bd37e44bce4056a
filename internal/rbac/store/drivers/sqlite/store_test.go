package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/idx"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestResourceNameCollisionResolvesLowestID(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	first := domain.Resource{ID: idx.New().String(), Name: "shared"}
	second := domain.Resource{ID: idx.New().String(), Name: "shared"}
	require.NoError(t, st.Resources().CreateResource(ctx, first))
	require.NoError(t, st.Resources().CreateResource(ctx, second))

	got, err := st.Resources().GetResourceByName(ctx, "shared")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
}

func TestGetPermissionsByIDsSkipsMissing(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	res := domain.Resource{ID: idx.New().String(), Name: "r"}
	require.NoError(t, st.Resources().CreateResource(ctx, res))

	a := domain.Permission{ID: idx.New().String(), ResourceID: res.ID, Operation: "read"}
	b := domain.Permission{ID: idx.New().String(), ResourceID: res.ID, Operation: "write"}
	require.NoError(t, st.Permissions().CreatePermission(ctx, a))
	require.NoError(t, st.Permissions().CreatePermission(ctx, b))

	// Request out of order with a ghost id mixed in; result is ordered and
	// the ghost is simply absent.
	perms, err := st.Permissions().GetPermissionsByIDs(ctx, []string{b.ID, "ghost", a.ID})
	require.NoError(t, err)
	require.Len(t, perms, 2)
	require.Equal(t, a.ID, perms[0].ID)
	require.Equal(t, b.ID, perms[1].ID)

	perms, err = st.Permissions().GetPermissionsByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, perms)
}

func TestPolicyUpdateBumpsUpdatedAt(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	p := domain.Policy{ID: idx.New().String(), Name: "p", PermissionIDs: []string{"x"}}
	require.NoError(t, st.Policies().CreatePolicy(ctx, p))

	before, err := st.Policies().GetPolicyByID(ctx, p.ID)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	p.PermissionIDs = []string{"x", "y"}
	require.NoError(t, st.Policies().UpdatePolicy(ctx, p))

	after, err := st.Policies().GetPolicyByID(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, after.UpdatedAt.After(before.UpdatedAt))
	require.Equal(t, []string{"x", "y"}, after.PermissionIDs)
}

func TestRolesForUserCompanyScoping(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	acme := domain.Role{ID: idx.New().String(), Name: "acme-role", CompanyID: "acme"}
	globexRole := domain.Role{ID: idx.New().String(), Name: "globex-role", CompanyID: "globex"}
	anywhere := domain.Role{ID: idx.New().String(), Name: "anywhere-role"}
	for _, role := range []domain.Role{acme, globexRole, anywhere} {
		require.NoError(t, st.Roles().CreateRole(ctx, role))
	}

	require.NoError(t, st.UserRoles().Assign(ctx, domain.UserRole{UserID: "u1", RoleID: acme.ID, CompanyID: "acme"}))
	require.NoError(t, st.UserRoles().Assign(ctx, domain.UserRole{UserID: "u1", RoleID: globexRole.ID, CompanyID: "globex"}))
	require.NoError(t, st.UserRoles().Assign(ctx, domain.UserRole{UserID: "u1", RoleID: anywhere.ID}))

	t.Run("empty filter returns everything", func(t *testing.T) {
		roles, err := st.UserRoles().RolesForUser(ctx, "u1", "")
		require.NoError(t, err)
		require.Len(t, roles, 3)
	})

	t.Run("company filter keeps unscoped grants", func(t *testing.T) {
		roles, err := st.UserRoles().RolesForUser(ctx, "u1", "acme")
		require.NoError(t, err)
		require.Len(t, roles, 2)
		require.Equal(t, acme.ID, roles[0].ID)
		require.Equal(t, anywhere.ID, roles[1].ID)
	})

	t.Run("grant to missing role is invisible", func(t *testing.T) {
		require.NoError(t, st.UserRoles().Assign(ctx, domain.UserRole{UserID: "u1", RoleID: "deleted-role"}))

		roles, err := st.UserRoles().RolesForUser(ctx, "u1", "")
		require.NoError(t, err)
		require.Len(t, roles, 3)
	})
}

func TestRolePolicyAssignKeepsTimestampOnReplay(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	require.NoError(t, st.RolePolicies().Assign(ctx, "role-1", "policy-1"))

	assocs, err := st.RolePolicies().ListByRole(ctx, "role-1")
	require.NoError(t, err)
	require.Len(t, assocs, 1)
	first := assocs[0].UpdatedAt

	time.Sleep(time.Millisecond)
	require.NoError(t, st.RolePolicies().Assign(ctx, "role-1", "policy-1"))

	assocs, err = st.RolePolicies().ListByRole(ctx, "role-1")
	require.NoError(t, err)
	require.Len(t, assocs, 1)
	require.Equal(t, first, assocs[0].UpdatedAt)

	require.NoError(t, st.RolePolicies().Unassign(ctx, "role-1", "policy-1"))
	require.ErrorIs(t, st.RolePolicies().Unassign(ctx, "role-1", "policy-1"), store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	ctx := context.Background()

	res := domain.Resource{ID: idx.New().String(), Name: "kept"}
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Resources().CreateResource(ctx, res); err != nil {
			return err
		}
		return context.Canceled // any error aborts the tx
	})
	require.Error(t, err)

	_, err = st.Resources().GetResourceByID(ctx, res.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
