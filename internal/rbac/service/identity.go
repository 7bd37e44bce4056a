package service

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/store"
)

// IdentityResolver maps a user identifier to the roles that user currently
// holds, scoped to a company when companyID is non-empty. The authorizer
// depends on this interface rather than the store so deployments that keep
// user→role membership in an external identity provider can inject their own
// implementation.
type IdentityResolver interface {
	RolesOf(ctx context.Context, userID, companyID string) ([]domain.Role, error)
}

// StoreIdentityResolver resolves role membership from the user_roles table,
// which the /user-roles endpoints manage.
type StoreIdentityResolver struct {
	Store store.Store
}

func (r *StoreIdentityResolver) RolesOf(ctx context.Context, userID, companyID string) ([]domain.Role, error) {
	return r.Store.UserRoles().RolesForUser(ctx, userID, companyID)
}
