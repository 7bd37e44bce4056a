package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type permissionsRepo struct {
	db dbtx
}

const permissionColumns = "id, resource_id, operation, created_at, updated_at"

func scanPermission(row interface{ Scan(...any) error }) (domain.Permission, error) {
	var p domain.Permission
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.ResourceID, &p.Operation, &createdAt, &updatedAt); err != nil {
		return domain.Permission{}, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

func (r *permissionsRepo) GetPermissionByID(ctx context.Context, id string) (domain.Permission, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+permissionColumns+` FROM permissions WHERE id = ?`, id)
	p, err := scanPermission(row)
	if err != nil {
		return domain.Permission{}, mapNotFound(err)
	}
	return p, nil
}

func (r *permissionsRepo) GetPermissionsByIDs(ctx context.Context, ids []string) ([]domain.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	in, args := inPlaceholders(ids)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+permissionColumns+` FROM permissions WHERE id IN `+in+` ORDER BY id`, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var perms []domain.Permission
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func (r *permissionsRepo) ListPermissions(ctx context.Context) ([]domain.Permission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+permissionColumns+` FROM permissions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var perms []domain.Permission
	for rows.Next() {
		p, err := scanPermission(rows)
		if err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO permissions (id, resource_id, operation, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.ResourceID, p.Operation, ts, ts)
	return mapConstraint(err)
}

func (r *permissionsRepo) UpdatePermission(ctx context.Context, p domain.Permission) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE permissions SET resource_id = ?, operation = ?, updated_at = ? WHERE id = ?`,
		p.ResourceID, p.Operation, now(), p.ID))
}

func (r *permissionsRepo) DeletePermission(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM permissions WHERE id = ?`, id))
}
