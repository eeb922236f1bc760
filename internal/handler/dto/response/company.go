package response

import (
	"time"

	"loyalty-coupon-api/internal/usecase"
)

type CompanyResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	AdminID     string    `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCompanyView(v *usecase.CompanyView) *CompanyResponse {
	return &CompanyResponse{
		ID:          v.ID.String(),
		Name:        v.Name,
		Description: v.Description,
		AdminID:     v.AdminID.String(),
		CreatedAt:   v.CreatedAt,
	}
}

func FromCompanyList(views []usecase.CompanyView) []*CompanyResponse {
	res := make([]*CompanyResponse, len(views))
	for i := range views {
		res[i] = FromCompanyView(&views[i])
	}
	return res
}
