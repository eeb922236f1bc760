package response

import "loyalty-coupon-api/internal/usecase"

type RuleResponse struct {
	ID              string `json:"id"`
	CompanyID       string `json:"company_id"`
	RequiredCoupons int32  `json:"required_coupons"`
	Reward          string `json:"reward"`
}

func FromRuleView(v *usecase.RuleView) *RuleResponse {
	return &RuleResponse{
		ID:              v.ID.String(),
		CompanyID:       v.CompanyID.String(),
		RequiredCoupons: v.RequiredCoupons,
		Reward:          v.Reward,
	}
}

func FromRuleList(views []usecase.RuleView) []*RuleResponse {
	res := make([]*RuleResponse, len(views))
	for i := range views {
		res[i] = FromRuleView(&views[i])
	}
	return res
}
