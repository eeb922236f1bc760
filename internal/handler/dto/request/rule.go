package request

import (
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
)

// RequiredCoupons carries no min binding on purpose: positivity is a
// domain rule checked after the ownership lookup, not a schema constraint.
type CreateRuleRequest struct {
	CompanyID       uuid.UUID `json:"company_id" binding:"required"`
	RequiredCoupons int32     `json:"required_coupons"`
	Reward          string    `json:"reward" binding:"required"`
}

type UpdateRuleRequest struct {
	RequiredCoupons *int32  `json:"required_coupons"`
	Reward          *string `json:"reward"`
}

func (r *UpdateRuleRequest) ToInput() usecase.UpdateRuleInput {
	return usecase.UpdateRuleInput{
		RequiredCoupons: r.RequiredCoupons,
		Reward:          r.Reward,
	}
}
