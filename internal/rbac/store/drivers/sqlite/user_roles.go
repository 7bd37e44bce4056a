package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type userRolesRepo struct {
	db dbtx
}

func (r *userRolesRepo) ListByUser(ctx context.Context, userID string) ([]domain.UserRole, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, role_id, company_id, created_at, updated_at
		 FROM user_roles WHERE user_id = ? ORDER BY role_id`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var grants []domain.UserRole
	for rows.Next() {
		var ur domain.UserRole
		var createdAt, updatedAt string
		if err := rows.Scan(&ur.UserID, &ur.RoleID, &ur.CompanyID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		ur.CreatedAt = parseTime(createdAt)
		ur.UpdatedAt = parseTime(updatedAt)
		grants = append(grants, ur)
	}
	return grants, rows.Err()
}

func (r *userRolesRepo) RolesForUser(ctx context.Context, userID, companyID string) ([]domain.Role, error) {
	// Grants recorded without a company apply everywhere; a company filter
	// keeps those plus the grants scoped to the requested company.
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.name, r.company_id, r.created_at, r.updated_at
		 FROM user_roles ur
		 JOIN roles r ON r.id = ur.role_id
		 WHERE ur.user_id = ? AND (? = '' OR ur.company_id = '' OR ur.company_id = ?)
		 ORDER BY r.id`,
		userID, companyID, companyID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Assign is idempotent on the (user, role) pair; a re-grant updates the
// company scoping only.
func (r *userRolesRepo) Assign(ctx context.Context, ur domain.UserRole) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role_id, company_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, role_id) DO UPDATE SET company_id = excluded.company_id, updated_at = excluded.updated_at`,
		ur.UserID, ur.RoleID, ur.CompanyID, ts, ts)
	return err
}

func (r *userRolesRepo) Unassign(ctx context.Context, userID, roleID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM user_roles WHERE user_id = ? AND role_id = ?`,
		userID, roleID))
}
