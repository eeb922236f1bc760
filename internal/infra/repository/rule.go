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

type ruleRepository struct {
	pool *pgxpool.Pool
}

func NewRuleRepository(pool *pgxpool.Pool) usecase.RuleRepository {
	return &ruleRepository{pool: pool}
}

func (r *ruleRepository) Create(ctx context.Context, companyID uuid.UUID, requiredCoupons int32, reward string) (*usecase.RuleView, error) {
	const q = `INSERT INTO coupon_rules (company_id, required_coupons, reward)
		VALUES ($1, $2, $3)
		RETURNING id, company_id, required_coupons, reward`

	var v usecase.RuleView
	err := r.pool.QueryRow(ctx, q, companyID, requiredCoupons, reward).
		Scan(&v.ID, &v.CompanyID, &v.RequiredCoupons, &v.Reward)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon rule", err)
	}
	return &v, nil
}

func (r *ruleRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]usecase.RuleView, error) {
	const q = `SELECT id, company_id, required_coupons, reward
		FROM coupon_rules WHERE company_id = $1`

	rows, err := r.pool.Query(ctx, q, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon rules", err)
	}
	defer rows.Close()

	var list []usecase.RuleView
	for rows.Next() {
		var v usecase.RuleView
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.RequiredCoupons, &v.Reward); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon rule row", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rule rows", err)
	}
	return list, nil
}

func (r *ruleRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.RuleView, error) {
	const q = `SELECT id, company_id, required_coupons, reward
		FROM coupon_rules WHERE id = $1`

	var v usecase.RuleView
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&v.ID, &v.CompanyID, &v.RequiredCoupons, &v.Reward)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon rule", err)
	}
	return &v, nil
}

func (r *ruleRepository) Update(ctx context.Context, id uuid.UUID, requiredCoupons int32, reward string) (*usecase.RuleView, error) {
	const q = `UPDATE coupon_rules SET required_coupons = $2, reward = $3
		WHERE id = $1
		RETURNING id, company_id, required_coupons, reward`

	var v usecase.RuleView
	err := r.pool.QueryRow(ctx, q, id, requiredCoupons, reward).
		Scan(&v.ID, &v.CompanyID, &v.RequiredCoupons, &v.Reward)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update coupon rule", err)
	}
	return &v, nil
}

func (r *ruleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM coupon_rules WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon rule not found", nil, infra.KindNotFound)
	}
	return nil
}
