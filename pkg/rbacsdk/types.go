// Package rbacsdk holds the wire types for the guardian HTTP API plus a small
// client used by integrators and the end-to-end tests.
package rbacsdk

import "time"

// ErrorResponse is the uniform error envelope returned on every failure.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong
	Error string `json:"error"`
}

// ============================================================================
// Entity Types
// ============================================================================

// Resource represents a protectable entity class (e.g. "invoice").
type Resource struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Permission represents "operation O on resource R".
type Permission struct {
	ID         string    `json:"id"`
	ResourceID string    `json:"resource_id"`
	Operation  string    `json:"operation"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Policy is a named bundle of permissions, assignable to roles.
type Policy struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	PermissionIDs []string  `json:"permission_ids"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Role is a named grouping of policies scoped to a company.
type Role struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRole records that a user holds a role within a company.
type UserRole struct {
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	CompanyID string    `json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ============================================================================
// Request Types
// ============================================================================

type CreateResourceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// PatchResourceRequest carries a partial update; nil fields are left alone.
type PatchResourceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CreatePermissionRequest struct {
	ResourceID string `json:"resource_id" validate:"required"`
	Operation  string `json:"operation" validate:"required"`
}

type PatchPermissionRequest struct {
	ResourceID *string `json:"resource_id,omitempty"`
	Operation  *string `json:"operation,omitempty"`
}

type CreatePolicyRequest struct {
	Name          string   `json:"name" validate:"required"`
	PermissionIDs []string `json:"permission_ids"`
}

type PatchPolicyRequest struct {
	Name          *string   `json:"name,omitempty"`
	PermissionIDs *[]string `json:"permission_ids,omitempty"`
}

type CreateRoleRequest struct {
	Name      string `json:"name" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
}

type PatchRoleRequest struct {
	Name      *string `json:"name,omitempty"`
	CompanyID *string `json:"company_id,omitempty"`
}

// AssignPolicyRequest is the body for POST /roles/{id}/policies.
type AssignPolicyRequest struct {
	PolicyID string `json:"policy_id" validate:"required"`
}

// AssignRoleRequest is the body for POST /user-roles.
type AssignRoleRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	RoleID    string `json:"role_id" validate:"required"`
	CompanyID string `json:"company_id"`
}

// CheckAccessRequest is the body for the core POST /check-access operation.
type CheckAccessRequest struct {
	UserID string `json:"user_id" validate:"required"`
	// Resource may be a resource id or its name; ids win on collision.
	Resource  string `json:"resource" validate:"required"`
	Operation string `json:"operation" validate:"required"`
}

// ============================================================================
// Response Types
// ============================================================================

// CheckAccessResponse is the access decision plus its auditable reason.
type CheckAccessResponse struct {
	AccessGranted bool   `json:"access_granted"`
	Reason        string `json:"reason"`
}

type ListResourcesResponse struct {
	Resources []Resource `json:"resources"`
}

type ListPermissionsResponse struct {
	Permissions []Permission `json:"permissions"`
}

type ListPoliciesResponse struct {
	Policies []Policy `json:"policies"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

type ListUserRolesResponse struct {
	UserRoles []UserRole `json:"user_roles"`
}

// ConfigResponse echoes the non-secret runtime configuration so operators
// can see what a deployment is actually running with.
type ConfigResponse struct {
	Env                 string `json:"env"`
	Port                int    `json:"port"`
	LogLevel            string `json:"log_level"`
	LogFormat           string `json:"log_format"`
	DatabaseFile        string `json:"database_file"`
	ShutdownGracePeriod string `json:"shutdown_grace_period"`
	EnforceAccess       bool   `json:"enforce_access"`
	CacheSize           int    `json:"cache_size"`
}

// VersionResponse reports build metadata.
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the livez/readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
