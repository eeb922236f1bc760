package builder

import (
	"time"

	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CompanyBuilder struct {
	ID          uuid.UUID
	Name        string
	Description *string
	AdminID     uuid.UUID
	CreatedAt   time.Time
}

func NewCompanyBuilder() *CompanyBuilder {
	description := "Coffee shop chain"
	return &CompanyBuilder{
		ID:          uuid.New(),
		Name:        "Acme Coffee",
		Description: &description,
		AdminID:     uuid.New(),
		CreatedAt:   time.Now(),
	}
}

func (c *CompanyBuilder) Clone() *CompanyBuilder {
	var out CompanyBuilder
	_ = copier.Copy(&out, c)
	return &out
}

func (c *CompanyBuilder) WithName(name string) *CompanyBuilder {
	c.Name = name
	return c
}

func (c *CompanyBuilder) WithAdminID(adminID uuid.UUID) *CompanyBuilder {
	c.AdminID = adminID
	return c
}

func (c *CompanyBuilder) WithoutDescription() *CompanyBuilder {
	c.Description = nil
	return c
}

func (c *CompanyBuilder) BuildCreateDTO() reqdto.CreateCompanyRequest {
	return reqdto.CreateCompanyRequest{
		Name:        c.Name,
		Description: c.Description,
	}
}

func (c *CompanyBuilder) BuildView() *usecase.CompanyView {
	return &usecase.CompanyView{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		AdminID:     c.AdminID,
		CreatedAt:   c.CreatedAt,
	}
}
