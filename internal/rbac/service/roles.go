package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pmguardian/guardian/internal/rbac/domain"
	"github.com/pmguardian/guardian/internal/rbac/metrics"
	"github.com/pmguardian/guardian/internal/rbac/store"
	"github.com/pmguardian/guardian/pkg/idx"
	"github.com/pmguardian/guardian/pkg/slogx"
)

type RolesService struct {
	Store store.Store

	// Aggregator is invalidated when the role's policy set changes. Courtesy
	// only; the grant-set tokens cover association rows too.
	Aggregator *RoleAggregator
}

func (s *RolesService) Create(ctx context.Context, name, companyID string) (domain.Role, error) {
	r := domain.Role{
		ID:        idx.New().String(),
		Name:      name,
		CompanyID: companyID,
	}
	if err := s.Store.Roles().CreateRole(ctx, r); err != nil {
		return domain.Role{}, fmt.Errorf("create role: %w", err)
	}
	return s.Get(ctx, r.ID)
}

func (s *RolesService) Get(ctx context.Context, id string) (domain.Role, error) {
	r, err := s.Store.Roles().GetRoleByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return r, err
}

func (s *RolesService) List(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRoles(ctx)
}

func (s *RolesService) Update(ctx context.Context, id, name, companyID string) (domain.Role, error) {
	err := s.Store.Roles().UpdateRole(ctx, domain.Role{
		ID:        id,
		Name:      name,
		CompanyID: companyID,
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	if err != nil {
		return domain.Role{}, fmt.Errorf("update role: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *RolesService) Patch(ctx context.Context, id string, name, companyID *string) (domain.Role, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.Role{}, err
	}
	if name != nil {
		current.Name = *name
	}
	if companyID != nil {
		current.CompanyID = *companyID
	}
	return s.Update(ctx, id, current.Name, current.CompanyID)
}

// Delete removes the role. Policy associations and user grants pointing at
// it go stale and are ignored by evaluation.
func (s *RolesService) Delete(ctx context.Context, id string) error {
	err := s.Store.Roles().DeleteRole(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}
	if s.Aggregator != nil {
		s.Aggregator.Invalidate(id)
	}
	return nil
}

// AssignPolicy attaches a policy to a role. Unlike policy→permission
// references, both ends are validated here: an assignment names two concrete
// records and a typo'd id is almost certainly a caller bug.
func (s *RolesService) AssignPolicy(ctx context.Context, roleID, policyID string) error {
	if _, err := s.Get(ctx, roleID); err != nil {
		return err
	}
	if _, err := s.Store.Policies().GetPolicyByID(ctx, policyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return err
	}

	if err := s.Store.RolePolicies().Assign(ctx, roleID, policyID); err != nil {
		return fmt.Errorf("assign policy %s to role %s: %w", policyID, roleID, err)
	}
	if s.Aggregator != nil {
		s.Aggregator.Invalidate(roleID)
	}
	return nil
}

// UnassignPolicy detaches a policy from a role.
func (s *RolesService) UnassignPolicy(ctx context.Context, roleID, policyID string) error {
	if _, err := s.Get(ctx, roleID); err != nil {
		return err
	}

	err := s.Store.RolePolicies().Unassign(ctx, roleID, policyID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrAssignmentNotFound
	}
	if err != nil {
		return err
	}
	if s.Aggregator != nil {
		s.Aggregator.Invalidate(roleID)
	}
	return nil
}

// ListPolicies returns the policies currently assigned to a role, ordered by
// policy id. Associations whose policy has been deleted are skipped with a
// warning, matching how evaluation treats them.
func (s *RolesService) ListPolicies(ctx context.Context, roleID string) ([]domain.Policy, error) {
	if _, err := s.Get(ctx, roleID); err != nil {
		return nil, err
	}

	assocs, err := s.Store.RolePolicies().ListByRole(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("list policies of role %s: %w", roleID, err)
	}

	policies := make([]domain.Policy, 0, len(assocs))
	for _, assoc := range assocs {
		p, err := s.Store.Policies().GetPolicyByID(ctx, assoc.PolicyID)
		if errors.Is(err, store.ErrNotFound) {
			metrics.DanglingReferences.Inc()
			slogx.FromContext(ctx).Warn("role references missing policy",
				"role_id", roleID,
				"policy_id", assoc.PolicyID,
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}
