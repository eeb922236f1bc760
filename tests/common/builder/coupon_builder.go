package builder

import (
	"time"

	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponBuilder struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	ClientID  uuid.UUID
	Barcode   string
	Count     int32
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:        uuid.New(),
		CompanyID: uuid.New(),
		ClientID:  uuid.New(),
		Barcode:   "4901234567894",
		Count:     0,
	}
}

func (c *CouponBuilder) Clone() *CouponBuilder {
	var out CouponBuilder
	_ = copier.Copy(&out, c)
	return &out
}

func (c *CouponBuilder) WithBarcode(barcode string) *CouponBuilder {
	c.Barcode = barcode
	return c
}

func (c *CouponBuilder) WithCount(count int32) *CouponBuilder {
	c.Count = count
	return c
}

func (c *CouponBuilder) BuildView() *usecase.CouponView {
	now := time.Now()
	return &usecase.CouponView{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		ClientID:  c.ClientID,
		Barcode:   c.Barcode,
		Count:     c.Count,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
