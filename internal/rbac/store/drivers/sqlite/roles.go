package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type rolesRepo struct {
	db dbtx
}

const roleColumns = "id, name, company_id, created_at, updated_at"

func scanRole(row interface{ Scan(...any) error }) (domain.Role, error) {
	var role domain.Role
	var createdAt, updatedAt string
	if err := row.Scan(&role.ID, &role.Name, &role.CompanyID, &createdAt, &updatedAt); err != nil {
		return domain.Role{}, err
	}
	role.CreatedAt = parseTime(createdAt)
	role.UpdatedAt = parseTime(updatedAt)
	return role, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY id`)
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

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (id, name, company_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		role.ID, role.Name, role.CompanyID, ts, ts)
	return mapConstraint(err)
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE roles SET name = ?, company_id = ?, updated_at = ? WHERE id = ?`,
		role.Name, role.CompanyID, now(), role.ID))
}

func (r *rolesRepo) DeleteRole(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM roles WHERE id = ?`, id))
}
