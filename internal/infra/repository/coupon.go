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

// couponRepository implements the ledger's existence conventions:
// (nil, nil) for absent reads, false for writes that matched no row.
// Only genuine store failures come back as errors.
type couponRepository struct {
	pool *pgxpool.Pool
}

func NewCouponRepository(pool *pgxpool.Pool) usecase.CouponRepository {
	return &couponRepository{pool: pool}
}

func (r *couponRepository) Insert(ctx context.Context, companyID, clientID uuid.UUID, barcode string) (*usecase.CouponView, error) {
	const q = `INSERT INTO coupons (company_id, client_id, barcode)
		VALUES ($1, $2, $3)
		RETURNING id, company_id, client_id, barcode, count, created_at, updated_at`

	var v usecase.CouponView
	err := r.pool.QueryRow(ctx, q, companyID, clientID, barcode).
		Scan(&v.ID, &v.CompanyID, &v.ClientID, &v.Barcode, &v.Count, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return &v, nil
}

func (r *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.CouponView, error) {
	const q = `SELECT id, company_id, client_id, barcode, count, created_at, updated_at
		FROM coupons WHERE id = $1`
	return r.queryOne(ctx, q, id)
}

func (r *couponRepository) FindByBarcodeAndClient(ctx context.Context, barcode string, clientID uuid.UUID) (*usecase.CouponView, error) {
	const q = `SELECT id, company_id, client_id, barcode, count, created_at, updated_at
		FROM coupons WHERE barcode = $1 AND client_id = $2`
	return r.queryOne(ctx, q, barcode, clientID)
}

func (r *couponRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]usecase.CouponView, error) {
	const q = `SELECT id, company_id, client_id, barcode, count, created_at, updated_at
		FROM coupons WHERE client_id = $1`
	return r.queryMany(ctx, q, clientID)
}

func (r *couponRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]usecase.CouponView, error) {
	const q = `SELECT id, company_id, client_id, barcode, count, created_at, updated_at
		FROM coupons WHERE company_id = $1`
	return r.queryMany(ctx, q, companyID)
}

func (r *couponRepository) SetCount(ctx context.Context, id uuid.UUID, count int32) (bool, error) {
	const q = `UPDATE coupons SET count = $2, updated_at = clock_timestamp() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id, count)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set coupon count", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Increment is a single-statement read-modify-write: the store applies
// the addition, so concurrent increments of one coupon never lose updates.
func (r *couponRepository) Increment(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `UPDATE coupons SET count = count + 1, updated_at = clock_timestamp() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon count", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *couponRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM coupons WHERE id = $1`

	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete coupon", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *couponRepository) queryOne(ctx context.Context, q string, args ...any) (*usecase.CouponView, error) {
	var v usecase.CouponView
	err := r.pool.QueryRow(ctx, q, args...).
		Scan(&v.ID, &v.CompanyID, &v.ClientID, &v.Barcode, &v.Count, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find coupon", err)
	}
	return &v, nil
}

func (r *couponRepository) queryMany(ctx context.Context, q string, args ...any) ([]usecase.CouponView, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var list []usecase.CouponView
	for rows.Next() {
		var v usecase.CouponView
		if err := rows.Scan(&v.ID, &v.CompanyID, &v.ClientID, &v.Barcode, &v.Count, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return list, nil
}
