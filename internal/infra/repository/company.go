package repository

import (
	"context"
	"errors"

	"loyalty-coupon-api/internal/infra"
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type companyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) usecase.CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, adminID uuid.UUID, name string, description *string) (*usecase.CompanyView, error) {
	const q = `INSERT INTO companies (name, description, admin_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, admin_id, created_at`

	var v usecase.CompanyView
	err := r.pool.QueryRow(ctx, q, name, description, adminID).
		Scan(&v.ID, &v.Name, &v.Description, &v.AdminID, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create company", err)
	}
	return &v, nil
}

func (r *companyRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]usecase.CompanyView, error) {
	const q = `SELECT id, name, description, admin_id, created_at
		FROM companies
		WHERE admin_id = $1
		ORDER BY created_at
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, q, adminID, skip, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	var list []usecase.CompanyView
	for rows.Next() {
		var v usecase.CompanyView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.AdminID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan company row", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read company rows", err)
	}
	return list, nil
}

// FindByIDForAdmin folds the owner constraint into the query: an
// existing-but-foreign company is indistinguishable from an absent one.
func (r *companyRepository) FindByIDForAdmin(ctx context.Context, id, adminID uuid.UUID) (*usecase.CompanyView, error) {
	const q = `SELECT id, name, description, admin_id, created_at
		FROM companies WHERE id = $1 AND admin_id = $2`

	var v usecase.CompanyView
	err := r.pool.QueryRow(ctx, q, id, adminID).
		Scan(&v.ID, &v.Name, &v.Description, &v.AdminID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company", err)
	}
	return &v, nil
}

func (r *companyRepository) Update(ctx context.Context, id, adminID uuid.UUID, name string, description *string) (*usecase.CompanyView, error) {
	const q = `UPDATE companies SET name = $3, description = $4
		WHERE id = $1 AND admin_id = $2
		RETURNING id, name, description, admin_id, created_at`

	var v usecase.CompanyView
	err := r.pool.QueryRow(ctx, q, id, adminID, name, description).
		Scan(&v.ID, &v.Name, &v.Description, &v.AdminID, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update company", err)
	}
	return &v, nil
}

func (r *companyRepository) Delete(ctx context.Context, id, adminID uuid.UUID) error {
	const q = `DELETE FROM companies WHERE id = $1 AND admin_id = $2`

	tag, err := r.pool.Exec(ctx, q, id, adminID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete company", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("company not found", nil, infra.KindNotFound)
	}
	return nil
}
