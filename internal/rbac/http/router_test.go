package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmguardian/guardian/internal/rbac/service"
	"github.com/pmguardian/guardian/internal/rbac/store/drivers/sqlite"
	"github.com/pmguardian/guardian/pkg/rbacsdk"
	"github.com/pmguardian/guardian/pkg/slogx"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	permAgg := service.NewPermissionAggregator(st, 0)
	roleAgg := service.NewRoleAggregator(st, permAgg, 0)

	router := NewRouter("test", st, slogx.Discard())
	router.ResourcesService = &service.ResourcesService{Store: st}
	router.PermissionsService = &service.PermissionsService{Store: st}
	router.PoliciesService = &service.PoliciesService{Store: st, Aggregator: permAgg}
	router.RolesService = &service.RolesService{Store: st, Aggregator: roleAgg}
	router.UserRolesService = &service.UserRolesService{Store: st}
	router.Authorizer = &service.Authorizer{
		Resources: &service.ResourceResolver{Store: st},
		Identity:  &service.StoreIdentityResolver{Store: st},
		Roles:     roleAgg,
	}
	router.RuntimeConfig = rbacsdk.ConfigResponse{
		Env:          "test",
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "json",
		DatabaseFile: ":memory:",
	}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestResourceCRUDOverHTTP(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	client := rbacsdk.NewClient(srv.URL)
	ctx := context.Background()

	resp := postJSON(t, srv.URL+"/resources", rbacsdk.CreateResourceRequest{
		Name:        "invoices",
		Description: "billing documents",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[rbacsdk.Resource](t, resp)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "invoices", created.Name)

	got, err := client.GetResource(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)

	all, err := client.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	t.Run("missing name is 400", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/resources", rbacsdk.CreateResourceRequest{Description: "no name"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[rbacsdk.ErrorResponse](t, resp)
		require.NotEmpty(t, body.Error)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		_, err := client.GetResource(ctx, "01ZZZZZZZZZZZZZZZZZZZZZZZZ")
		var apiErr *rbacsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("delete is 204 then 404", func(t *testing.T) {
		require.NoError(t, client.DeleteResource(ctx, created.ID))

		err := client.DeleteResource(ctx, created.ID)
		var apiErr *rbacsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}

func TestCheckAccessOverHTTP(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	client := rbacsdk.NewClient(srv.URL)
	ctx := context.Background()

	res, err := client.CreateResource(ctx, rbacsdk.CreateResourceRequest{Name: "invoices"})
	require.NoError(t, err)
	perm, err := client.CreatePermission(ctx, rbacsdk.CreatePermissionRequest{
		ResourceID: res.ID,
		Operation:  "read",
	})
	require.NoError(t, err)
	policy, err := client.CreatePolicy(ctx, rbacsdk.CreatePolicyRequest{
		Name:          "invoice-readers",
		PermissionIDs: []string{perm.ID},
	})
	require.NoError(t, err)
	role, err := client.CreateRole(ctx, rbacsdk.CreateRoleRequest{Name: "accountant", CompanyID: "acme"})
	require.NoError(t, err)
	require.NoError(t, client.AssignPolicy(ctx, role.ID, policy.ID))
	require.NoError(t, client.AssignRole(ctx, rbacsdk.AssignRoleRequest{
		UserID: "u1", RoleID: role.ID, CompanyID: "acme",
	}))

	t.Run("granted", func(t *testing.T) {
		decision, err := client.CheckAccess(ctx, rbacsdk.CheckAccessRequest{
			UserID: "u1", Resource: "invoices", Operation: "read",
		})
		require.NoError(t, err)
		require.True(t, decision.AccessGranted)
		require.Contains(t, decision.Reason, role.ID)
		require.Contains(t, decision.Reason, policy.ID)
		require.Contains(t, decision.Reason, perm.ID)
	})

	t.Run("denied is still 200", func(t *testing.T) {
		decision, err := client.CheckAccess(ctx, rbacsdk.CheckAccessRequest{
			UserID: "u1", Resource: "invoices", Operation: "write",
		})
		require.NoError(t, err)
		require.False(t, decision.AccessGranted)
		require.Equal(t, "no policy grants operation 'write' on resource 'invoices'", decision.Reason)
	})

	t.Run("unknown resource is 404 with decision body", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/check-access", rbacsdk.CheckAccessRequest{
			UserID: "u1", Resource: "no-such-thing", Operation: "read",
		})
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		decision := decodeBody[rbacsdk.CheckAccessResponse](t, resp)
		require.False(t, decision.AccessGranted)
		require.Equal(t, "resource not found", decision.Reason)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/check-access", rbacsdk.CheckAccessRequest{UserID: "u1"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unassign revokes over the wire", func(t *testing.T) {
		require.NoError(t, client.UnassignPolicy(ctx, role.ID, policy.ID))

		decision, err := client.CheckAccess(ctx, rbacsdk.CheckAccessRequest{
			UserID: "u1", Resource: "invoices", Operation: "read",
		})
		require.NoError(t, err)
		require.False(t, decision.AccessGranted)
	})
}

func TestRolePolicyEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	client := rbacsdk.NewClient(srv.URL)
	ctx := context.Background()

	role, err := client.CreateRole(ctx, rbacsdk.CreateRoleRequest{Name: "viewer", CompanyID: "acme"})
	require.NoError(t, err)
	policy, err := client.CreatePolicy(ctx, rbacsdk.CreatePolicyRequest{Name: "p"})
	require.NoError(t, err)

	t.Run("assign unknown policy is 404", func(t *testing.T) {
		err := client.AssignPolicy(ctx, role.ID, "ghost")
		var apiErr *rbacsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("assign and list", func(t *testing.T) {
		require.NoError(t, client.AssignPolicy(ctx, role.ID, policy.ID))

		policies, err := client.ListRolePolicies(ctx, role.ID)
		require.NoError(t, err)
		require.Len(t, policies, 1)
		require.Equal(t, policy.ID, policies[0].ID)
	})

	t.Run("unassign requires policy_id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/roles/"+role.ID+"/policies", nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUserRoleEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	client := rbacsdk.NewClient(srv.URL)
	ctx := context.Background()

	role, err := client.CreateRole(ctx, rbacsdk.CreateRoleRequest{Name: "viewer", CompanyID: "acme"})
	require.NoError(t, err)

	require.NoError(t, client.AssignRole(ctx, rbacsdk.AssignRoleRequest{UserID: "u1", RoleID: role.ID}))

	grants, err := client.ListUserRoles(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	// Company inherited from the role when omitted.
	require.Equal(t, "acme", grants[0].CompanyID)

	require.NoError(t, client.UnassignRole(ctx, "u1", role.ID))

	grants, err = client.ListUserRoles(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, grants)
}

func TestSystemEndpoints(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	client := rbacsdk.NewClient(srv.URL)
	ctx := context.Background()

	health, err := client.Livez(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "test", health.Version)

	version, err := client.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", version.Version)

	resp, err := http.Get(srv.URL + "/readyz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	ready := decodeBody[rbacsdk.HealthResponse](t, resp)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)

	metricsResp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = metricsResp.Body.Close() }()
	require.Equal(t, http.StatusOK, metricsResp.StatusCode)

	cfg, err := client.Config(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Env)
	require.Equal(t, ":memory:", cfg.DatabaseFile)
	require.False(t, cfg.EnforceAccess)
}

func TestEnforcedManagementRoutes(t *testing.T) {
	t.Parallel()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	permAgg := service.NewPermissionAggregator(st, 0)
	roleAgg := service.NewRoleAggregator(st, permAgg, 0)
	router := NewRouter("test", st, slogx.Discard())
	router.ResourcesService = &service.ResourcesService{Store: st}
	router.PermissionsService = &service.PermissionsService{Store: st}
	router.PoliciesService = &service.PoliciesService{Store: st, Aggregator: permAgg}
	router.RolesService = &service.RolesService{Store: st, Aggregator: roleAgg}
	router.UserRolesService = &service.UserRolesService{Store: st}
	router.Authorizer = &service.Authorizer{
		Resources: &service.ResourceResolver{Store: st},
		Identity:  &service.StoreIdentityResolver{Store: st},
		Roles:     roleAgg,
	}
	router.EnforceAccess = true
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	t.Run("missing identity header is 400", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/resources", rbacsdk.CreateResourceRequest{Name: "r"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown guard resource denies with 403", func(t *testing.T) {
		buf, err := json.Marshal(rbacsdk.CreateResourceRequest{Name: "r"})
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/resources", bytes.NewReader(buf))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-Id", "u1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}
