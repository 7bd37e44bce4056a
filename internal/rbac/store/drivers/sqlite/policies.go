package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type policiesRepo struct {
	db dbtx
}

func (r *policiesRepo) GetPolicyByID(ctx context.Context, id string) (domain.Policy, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM policies WHERE id = ?`, id)

	var p domain.Policy
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Name, &createdAt, &updatedAt); err != nil {
		return domain.Policy{}, mapNotFound(err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	permissionIDs, err := r.permissionIDs(ctx, id)
	if err != nil {
		return domain.Policy{}, err
	}
	p.PermissionIDs = permissionIDs
	return p, nil
}

func (r *policiesRepo) permissionIDs(ctx context.Context, policyID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT permission_id FROM policy_permissions WHERE policy_id = ? ORDER BY permission_id`,
		policyID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *policiesRepo) ListPolicies(ctx context.Context) ([]domain.Policy, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM policies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var policies []domain.Policy
	index := make(map[string]int)
	for rows.Next() {
		var p domain.Policy
		var createdAt, updatedAt string
		if err := rows.Scan(&p.ID, &p.Name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		index[p.ID] = len(policies)
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One pass over the association table instead of a query per policy.
	assocRows, err := r.db.QueryContext(ctx,
		`SELECT policy_id, permission_id FROM policy_permissions ORDER BY policy_id, permission_id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = assocRows.Close() }()

	for assocRows.Next() {
		var policyID, permissionID string
		if err := assocRows.Scan(&policyID, &permissionID); err != nil {
			return nil, err
		}
		if i, ok := index[policyID]; ok {
			policies[i].PermissionIDs = append(policies[i].PermissionIDs, permissionID)
		}
	}
	return policies, assocRows.Err()
}

func (r *policiesRepo) CreatePolicy(ctx context.Context, p domain.Policy) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO policies (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, ts, ts)
	if err != nil {
		return mapConstraint(err)
	}
	return r.insertAssociations(ctx, p.ID, p.PermissionIDs, ts)
}

// UpdatePolicy replaces the name and rewrites the permission associations.
// Callers run this inside a transaction so the rewrite is atomic.
func (r *policiesRepo) UpdatePolicy(ctx context.Context, p domain.Policy) error {
	ts := now()
	if err := requireAffected(r.db.ExecContext(ctx,
		`UPDATE policies SET name = ?, updated_at = ? WHERE id = ?`,
		p.Name, ts, p.ID)); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM policy_permissions WHERE policy_id = ?`, p.ID); err != nil {
		return err
	}
	return r.insertAssociations(ctx, p.ID, p.PermissionIDs, ts)
}

func (r *policiesRepo) insertAssociations(ctx context.Context, policyID string, permissionIDs []string, ts string) error {
	for _, permissionID := range permissionIDs {
		// ON CONFLICT keeps duplicate ids in the request harmless.
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO policy_permissions (policy_id, permission_id, created_at)
			 VALUES (?, ?, ?)
			 ON CONFLICT (policy_id, permission_id) DO NOTHING`,
			policyID, permissionID, ts); err != nil {
			return err
		}
	}
	return nil
}

func (r *policiesRepo) DeletePolicy(ctx context.Context, id string) error {
	if err := requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM policies WHERE id = ?`, id)); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM policy_permissions WHERE policy_id = ?`, id)
	return err
}
