package usecase

import (
	"context"
	"time"

	"loyalty-coupon-api/internal/domain/company"
	"loyalty-coupon-api/internal/infra"
	"loyalty-coupon-api/internal/pkg/errs"
	"loyalty-coupon-api/internal/pkg/patch"

	"github.com/google/uuid"
)

var ErrCompanyNotFound = errs.New("company not found")

type CompanyView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	AdminID     uuid.UUID `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CompanyRepository lookups fold the owner into the query itself, so a
// company owned by another admin surfaces as KindNotFound.
type CompanyRepository interface {
	Create(ctx context.Context, adminID uuid.UUID, name string, description *string) (*CompanyView, error)
	ListByAdmin(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]CompanyView, error)
	FindByIDForAdmin(ctx context.Context, id, adminID uuid.UUID) (*CompanyView, error)
	Update(ctx context.Context, id, adminID uuid.UUID, name string, description *string) (*CompanyView, error)
	Delete(ctx context.Context, id, adminID uuid.UUID) error
}

type UpdateCompanyInput struct {
	Name        *string
	Description *string
}

type CompanyUseCase interface {
	Create(ctx context.Context, adminID uuid.UUID, name company.Name, description *string) (*CompanyView, error)
	List(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]CompanyView, error)
	Get(ctx context.Context, adminID, companyID uuid.UUID) (*CompanyView, error)
	Update(ctx context.Context, adminID, companyID uuid.UUID, input UpdateCompanyInput) (*CompanyView, error)
	Delete(ctx context.Context, adminID, companyID uuid.UUID) error
}

type companyUseCaseImpl struct {
	companyRepo CompanyRepository
}

func NewCompanyUseCase(companyRepo CompanyRepository) CompanyUseCase {
	return &companyUseCaseImpl{companyRepo: companyRepo}
}

func (c *companyUseCaseImpl) Create(ctx context.Context, adminID uuid.UUID, name company.Name, description *string) (*CompanyView, error) {
	// Owner and creation time are stamped server-side; caller-supplied
	// values for either are never consulted.
	return c.companyRepo.Create(ctx, adminID, name.Value(), description)
}

func (c *companyUseCaseImpl) List(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]CompanyView, error) {
	return c.companyRepo.ListByAdmin(ctx, adminID, skip, limit)
}

func (c *companyUseCaseImpl) Get(ctx context.Context, adminID, companyID uuid.UUID) (*CompanyView, error) {
	view, err := c.companyRepo.FindByIDForAdmin(ctx, companyID, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCompanyNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (c *companyUseCaseImpl) Update(ctx context.Context, adminID, companyID uuid.UUID, input UpdateCompanyInput) (*CompanyView, error) {
	existing, err := c.Get(ctx, adminID, companyID)
	if err != nil {
		return nil, err
	}

	name := patch.Coalesce(input.Name, existing.Name)
	if _, err := company.NewName(name); err != nil {
		return nil, err
	}
	description := existing.Description
	if input.Description != nil {
		description = input.Description
	}

	view, err := c.companyRepo.Update(ctx, companyID, adminID, name, description)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCompanyNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (c *companyUseCaseImpl) Delete(ctx context.Context, adminID, companyID uuid.UUID) error {
	// No cascade: dependent rules and coupons are left in place.
	err := c.companyRepo.Delete(ctx, companyID, adminID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCompanyNotFound)
		}
		return err
	}
	return nil
}
