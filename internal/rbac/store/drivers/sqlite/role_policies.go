package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type rolePoliciesRepo struct {
	db dbtx
}

func (r *rolePoliciesRepo) ListByRole(ctx context.Context, roleID string) ([]domain.RolePolicy, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role_id, policy_id, created_at, updated_at
		 FROM role_policies WHERE role_id = ? ORDER BY policy_id`, roleID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var assocs []domain.RolePolicy
	for rows.Next() {
		var rp domain.RolePolicy
		var createdAt, updatedAt string
		if err := rows.Scan(&rp.RoleID, &rp.PolicyID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		rp.CreatedAt = parseTime(createdAt)
		rp.UpdatedAt = parseTime(updatedAt)
		assocs = append(assocs, rp)
	}
	return assocs, rows.Err()
}

// Assign is idempotent: re-assigning an existing pair leaves the row (and
// its updated_at, hence the aggregator cache token) untouched.
func (r *rolePoliciesRepo) Assign(ctx context.Context, roleID, policyID string) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO role_policies (role_id, policy_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (role_id, policy_id) DO NOTHING`,
		roleID, policyID, ts, ts)
	return err
}

func (r *rolePoliciesRepo) Unassign(ctx context.Context, roleID, policyID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM role_policies WHERE role_id = ? AND policy_id = ?`,
		roleID, policyID))
}
