package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CouponView struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	ClientID  uuid.UUID `json:"client_id"`
	Barcode   string    `json:"barcode"`
	Count     int32     `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CouponRepository signals absence with (nil, nil) on reads and false on
// writes instead of errors. This is a different contract from the
// company and rule repositories, and it is deliberate: callers of the
// ledger translate absence into their own error shape.
type CouponRepository interface {
	Insert(ctx context.Context, companyID, clientID uuid.UUID, barcode string) (*CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByBarcodeAndClient(ctx context.Context, barcode string, clientID uuid.UUID) (*CouponView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]CouponView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]CouponView, error)
	SetCount(ctx context.Context, id uuid.UUID, count int32) (bool, error)
	Increment(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CouponLedger tracks per-client coupon counters keyed by company and
// barcode. It grants no rewards itself: callers compare Count against a
// rule's RequiredCoupons.
type CouponLedger interface {
	// Create initializes a counter at zero. Duplicates for the same
	// (company, barcode, client) triple are allowed to coexist.
	Create(ctx context.Context, clientID, companyID uuid.UUID, barcode string) (*CouponView, error)
	// GetByID returns (nil, nil) when no coupon exists.
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	// GetByBarcodeAndClient resolves which coupon a scan applies to;
	// barcodes are only unique per client, not globally.
	GetByBarcodeAndClient(ctx context.Context, barcode string, clientID uuid.UUID) (*CouponView, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]CouponView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]CouponView, error)
	// SetCount overwrites the counter; false means no such coupon.
	SetCount(ctx context.Context, id uuid.UUID, count int32) (bool, error)
	// Increment adds one atomically in the store, so concurrent scans of
	// the same coupon never lose updates.
	Increment(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type couponLedgerImpl struct {
	couponRepo CouponRepository
}

func NewCouponLedger(couponRepo CouponRepository) CouponLedger {
	return &couponLedgerImpl{couponRepo: couponRepo}
}

func (l *couponLedgerImpl) Create(ctx context.Context, clientID, companyID uuid.UUID, barcode string) (*CouponView, error) {
	return l.couponRepo.Insert(ctx, companyID, clientID, barcode)
}

func (l *couponLedgerImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	return l.couponRepo.FindByID(ctx, id)
}

func (l *couponLedgerImpl) GetByBarcodeAndClient(ctx context.Context, barcode string, clientID uuid.UUID) (*CouponView, error) {
	return l.couponRepo.FindByBarcodeAndClient(ctx, barcode, clientID)
}

func (l *couponLedgerImpl) ListByClient(ctx context.Context, clientID uuid.UUID) ([]CouponView, error) {
	return l.couponRepo.ListByClient(ctx, clientID)
}

func (l *couponLedgerImpl) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]CouponView, error) {
	return l.couponRepo.ListByCompany(ctx, companyID)
}

func (l *couponLedgerImpl) SetCount(ctx context.Context, id uuid.UUID, count int32) (bool, error) {
	return l.couponRepo.SetCount(ctx, id, count)
}

func (l *couponLedgerImpl) Increment(ctx context.Context, id uuid.UUID) (bool, error) {
	return l.couponRepo.Increment(ctx, id)
}

func (l *couponLedgerImpl) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return l.couponRepo.Delete(ctx, id)
}
