package rbacsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal HTTP client for the guardian API. It is deliberately
// thin: one method per endpoint, JSON in, JSON out.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL (e.g. "http://localhost:8080").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rbacsdk: %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody ErrorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// CheckAccess performs the core access-check operation. A denied decision is
// not an error; the decision body is returned for both grants and denials,
// including the 404 returned for an unresolvable resource reference.
func (c *Client) CheckAccess(ctx context.Context, req CheckAccessRequest) (CheckAccessResponse, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return CheckAccessResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/check-access", bytes.NewReader(buf))
	if err != nil {
		return CheckAccessResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return CheckAccessResponse{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		var out CheckAccessResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return CheckAccessResponse{}, err
		}
		return out, nil
	default:
		var errBody ErrorResponse
		msg := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			msg = errBody.Error
		}
		return CheckAccessResponse{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
}

func (c *Client) CreateResource(ctx context.Context, req CreateResourceRequest) (Resource, error) {
	var out Resource
	err := c.do(ctx, http.MethodPost, "/resources", req, &out)
	return out, err
}

func (c *Client) ListResources(ctx context.Context) ([]Resource, error) {
	var out ListResourcesResponse
	err := c.do(ctx, http.MethodGet, "/resources", nil, &out)
	return out.Resources, err
}

func (c *Client) GetResource(ctx context.Context, id string) (Resource, error) {
	var out Resource
	err := c.do(ctx, http.MethodGet, "/resources/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) DeleteResource(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/resources/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreatePermission(ctx context.Context, req CreatePermissionRequest) (Permission, error) {
	var out Permission
	err := c.do(ctx, http.MethodPost, "/permissions", req, &out)
	return out, err
}

func (c *Client) PatchPermission(ctx context.Context, id string, req PatchPermissionRequest) (Permission, error) {
	var out Permission
	err := c.do(ctx, http.MethodPatch, "/permissions/"+url.PathEscape(id), req, &out)
	return out, err
}

func (c *Client) CreatePolicy(ctx context.Context, req CreatePolicyRequest) (Policy, error) {
	var out Policy
	err := c.do(ctx, http.MethodPost, "/policies", req, &out)
	return out, err
}

func (c *Client) CreateRole(ctx context.Context, req CreateRoleRequest) (Role, error) {
	var out Role
	err := c.do(ctx, http.MethodPost, "/roles", req, &out)
	return out, err
}

func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	var out ListRolesResponse
	err := c.do(ctx, http.MethodGet, "/roles", nil, &out)
	return out.Roles, err
}

func (c *Client) AssignPolicy(ctx context.Context, roleID, policyID string) error {
	return c.do(ctx, http.MethodPost, "/roles/"+url.PathEscape(roleID)+"/policies",
		AssignPolicyRequest{PolicyID: policyID}, nil)
}

func (c *Client) UnassignPolicy(ctx context.Context, roleID, policyID string) error {
	return c.do(ctx, http.MethodDelete,
		"/roles/"+url.PathEscape(roleID)+"/policies?policy_id="+url.QueryEscape(policyID), nil, nil)
}

func (c *Client) ListRolePolicies(ctx context.Context, roleID string) ([]Policy, error) {
	var out ListPoliciesResponse
	err := c.do(ctx, http.MethodGet, "/roles/"+url.PathEscape(roleID)+"/policies", nil, &out)
	return out.Policies, err
}

func (c *Client) AssignRole(ctx context.Context, req AssignRoleRequest) error {
	return c.do(ctx, http.MethodPost, "/user-roles", req, nil)
}

func (c *Client) ListUserRoles(ctx context.Context, userID string) ([]UserRole, error) {
	var out ListUserRolesResponse
	err := c.do(ctx, http.MethodGet, "/user-roles?user_id="+url.QueryEscape(userID), nil, &out)
	return out.UserRoles, err
}

func (c *Client) UnassignRole(ctx context.Context, userID, roleID string) error {
	return c.do(ctx, http.MethodDelete,
		"/user-roles?user_id="+url.QueryEscape(userID)+"&role_id="+url.QueryEscape(roleID), nil, nil)
}

func (c *Client) Config(ctx context.Context) (ConfigResponse, error) {
	var out ConfigResponse
	err := c.do(ctx, http.MethodGet, "/config", nil, &out)
	return out, err
}

func (c *Client) Version(ctx context.Context) (VersionResponse, error) {
	var out VersionResponse
	err := c.do(ctx, http.MethodGet, "/version", nil, &out)
	return out, err
}

func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out)
	return out, err
}
