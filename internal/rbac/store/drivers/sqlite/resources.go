package sqlite

import (
	"context"

	"github.com/pmguardian/guardian/internal/rbac/domain"
)

type resourcesRepo struct {
	db dbtx
}

const resourceColumns = "id, name, description, created_at, updated_at"

func scanResource(row interface{ Scan(...any) error }) (domain.Resource, error) {
	var res domain.Resource
	var createdAt, updatedAt string
	if err := row.Scan(&res.ID, &res.Name, &res.Description, &createdAt, &updatedAt); err != nil {
		return domain.Resource{}, err
	}
	res.CreatedAt = parseTime(createdAt)
	res.UpdatedAt = parseTime(updatedAt)
	return res, nil
}

func (r *resourcesRepo) GetResourceByID(ctx context.Context, id string) (domain.Resource, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE id = ?`, id)
	res, err := scanResource(row)
	if err != nil {
		return domain.Resource{}, mapNotFound(err)
	}
	return res, nil
}

func (r *resourcesRepo) GetResourceByName(ctx context.Context, name string) (domain.Resource, error) {
	// Lowest id wins when names collide, keeping resolution deterministic.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+resourceColumns+` FROM resources WHERE name = ? ORDER BY id LIMIT 1`, name)
	res, err := scanResource(row)
	if err != nil {
		return domain.Resource{}, mapNotFound(err)
	}
	return res, nil
}

func (r *resourcesRepo) ListResources(ctx context.Context) ([]domain.Resource, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+resourceColumns+` FROM resources ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var resources []domain.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *resourcesRepo) CreateResource(ctx context.Context, res domain.Resource) error {
	ts := now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO resources (id, name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		res.ID, res.Name, res.Description, ts, ts)
	return mapConstraint(err)
}

func (r *resourcesRepo) UpdateResource(ctx context.Context, res domain.Resource) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE resources SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		res.Name, res.Description, now(), res.ID))
}

func (r *resourcesRepo) DeleteResource(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM resources WHERE id = ?`, id))
}
