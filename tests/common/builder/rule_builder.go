package builder

import (
	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RuleBuilder struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	RequiredCoupons int32
	Reward          string
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		ID:              uuid.New(),
		CompanyID:       uuid.New(),
		RequiredCoupons: 10,
		Reward:          "Free coffee",
	}
}

func (r *RuleBuilder) Clone() *RuleBuilder {
	var out RuleBuilder
	_ = copier.Copy(&out, r)
	return &out
}

func (r *RuleBuilder) WithCompanyID(companyID uuid.UUID) *RuleBuilder {
	r.CompanyID = companyID
	return r
}

func (r *RuleBuilder) WithRequiredCoupons(n int32) *RuleBuilder {
	r.RequiredCoupons = n
	return r
}

func (r *RuleBuilder) BuildCreateDTO() reqdto.CreateRuleRequest {
	return reqdto.CreateRuleRequest{
		CompanyID:       r.CompanyID,
		RequiredCoupons: r.RequiredCoupons,
		Reward:          r.Reward,
	}
}

func (r *RuleBuilder) BuildView() *usecase.RuleView {
	return &usecase.RuleView{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		RequiredCoupons: r.RequiredCoupons,
		Reward:          r.Reward,
	}
}
