package request

import (
	"loyalty-coupon-api/internal/domain/company"
	"loyalty-coupon-api/internal/usecase"
)

type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (r *CreateCompanyRequest) ToDomain() (company.Name, *string, error) {
	name, err := company.NewName(r.Name)
	if err != nil {
		return company.Name{}, nil, err
	}
	return name, r.Description, nil
}

// UpdateCompanyRequest carries partial-update semantics: only fields
// present in the body are applied.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateCompanyRequest) ToInput() usecase.UpdateCompanyInput {
	return usecase.UpdateCompanyInput{
		Name:        r.Name,
		Description: r.Description,
	}
}

// ListCompaniesQuery bounds are a caller contract: out-of-range values
// are rejected, never clamped.
type ListCompaniesQuery struct {
	Skip  int32 `form:"skip,default=0" binding:"gte=0"`
	Limit int32 `form:"limit,default=10" binding:"min=1,max=100"`
}
