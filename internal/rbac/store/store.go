package store

import (
	"context"
	"errors"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable. The evaluation pipeline only ever reads through
// this interface; it never mutates records.
type Store interface {
	Resources() Resources
	Permissions() Permissions
	Policies() Policies
	Roles() Roles
	RolePolicies() RolePolicies
	UserRoles() UserRoles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Resources interface {
	// GetResourceByID returns a resource by id.
	GetResourceByID(ctx context.Context, id string) (domain.Resource, error)

	// GetResourceByName returns a resource by name. When several resources
	// share a name the lowest id wins, so lookups stay deterministic.
	GetResourceByName(ctx context.Context, name string) (domain.Resource, error)

	// ListResources returns all resources ordered by id.
	ListResources(ctx context.Context) ([]domain.Resource, error)

	// CreateResource inserts a new resource (id is provided by app via ULID)
	// and stamps created_at/updated_at.
	CreateResource(ctx context.Context, res domain.Resource) error

	// UpdateResource replaces the mutable fields and bumps updated_at.
	UpdateResource(ctx context.Context, res domain.Resource) error

	// DeleteResource removes a resource. Permissions referencing it are left
	// in place; evaluation tolerates the dangling reference.
	DeleteResource(ctx context.Context, id string) error
}

type Permissions interface {
	// GetPermissionByID returns a permission by id.
	GetPermissionByID(ctx context.Context, id string) (domain.Permission, error)

	// GetPermissionsByIDs returns the permissions that exist among ids,
	// ordered by id. Missing ids are simply absent from the result.
	GetPermissionsByIDs(ctx context.Context, ids []string) ([]domain.Permission, error)

	// ListPermissions returns all permissions ordered by id.
	ListPermissions(ctx context.Context) ([]domain.Permission, error)

	// CreatePermission inserts a new permission (id is ULID).
	CreatePermission(ctx context.Context, p domain.Permission) error

	// UpdatePermission replaces the mutable fields and bumps updated_at.
	UpdatePermission(ctx context.Context, p domain.Permission) error

	// DeletePermission removes a permission. Policies referencing it keep
	// the dangling id; evaluation filters it out.
	DeletePermission(ctx context.Context, id string) error
}

type Policies interface {
	// GetPolicyByID returns a policy with its permission ids
	// (ordered ascending).
	GetPolicyByID(ctx context.Context, id string) (domain.Policy, error)

	// ListPolicies returns all policies with their permission ids, ordered by id.
	ListPolicies(ctx context.Context) ([]domain.Policy, error)

	// CreatePolicy inserts a policy and its permission associations.
	CreatePolicy(ctx context.Context, p domain.Policy) error

	// UpdatePolicy replaces name and permission associations and bumps the
	// policy's updated_at, which is what lazily invalidates aggregator caches.
	UpdatePolicy(ctx context.Context, p domain.Policy) error

	// DeletePolicy removes a policy and its permission associations.
	DeletePolicy(ctx context.Context, id string) error
}

type Roles interface {
	// GetRoleByID fetches a role by its ID.
	GetRoleByID(ctx context.Context, id string) (domain.Role, error)

	// ListRoles returns all roles ordered by id.
	ListRoles(ctx context.Context) ([]domain.Role, error)

	// CreateRole inserts a new role (id is ULID).
	CreateRole(ctx context.Context, r domain.Role) error

	// UpdateRole replaces the mutable fields and bumps updated_at.
	UpdateRole(ctx context.Context, r domain.Role) error

	// DeleteRole removes a role.
	DeleteRole(ctx context.Context, id string) error
}

type RolePolicies interface {
	// ListByRole returns the role's policy associations ordered by policy id.
	ListByRole(ctx context.Context, roleID string) ([]domain.RolePolicy, error)

	// Assign records a (role, policy) pair. Assigning an existing pair is a
	// no-op; the pair stays logically unique.
	Assign(ctx context.Context, roleID, policyID string) error

	// Unassign removes a (role, policy) pair. Returns ErrNotFound when the
	// pair was never assigned.
	Unassign(ctx context.Context, roleID, policyID string) error
}

type UserRoles interface {
	// ListByUser returns all role grants for a user ordered by role id.
	ListByUser(ctx context.Context, userID string) ([]domain.UserRole, error)

	// RolesForUser joins the user's grants to their roles, ordered by role
	// id. A non-empty companyID keeps only grants recorded for that company
	// or with no company scoping at all.
	RolesForUser(ctx context.Context, userID, companyID string) ([]domain.Role, error)

	// Assign records that a user holds a role. Idempotent on the
	// (user, role) pair.
	Assign(ctx context.Context, ur domain.UserRole) error

	// Unassign removes a (user, role) grant. Returns ErrNotFound when the
	// grant does not exist.
	Unassign(ctx context.Context, userID, roleID string) error
}
