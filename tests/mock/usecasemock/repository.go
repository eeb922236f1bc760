// Package usecasemock provides hand-written testify mocks for the
// usecase layer's repository ports and service interfaces.
package usecasemock

import (
	"context"

	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, email, name, role, passwordHash string) (*usecase.UserView, error) {
	args := m.Called(ctx, email, name, role, passwordHash)
	view, _ := args.Get(0).(*usecase.UserView)
	return view, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*usecase.UserView, string, error) {
	args := m.Called(ctx, email)
	view, _ := args.Get(0).(*usecase.UserView)
	return view, args.String(1), args.Error(2)
}

type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, adminID uuid.UUID, name string, description *string) (*usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, name, description)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyRepository) ListByAdmin(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, skip, limit)
	views, _ := args.Get(0).([]usecase.CompanyView)
	return views, args.Error(1)
}

func (m *CompanyRepository) FindByIDForAdmin(ctx context.Context, id, adminID uuid.UUID) (*usecase.CompanyView, error) {
	args := m.Called(ctx, id, adminID)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, id, adminID uuid.UUID, name string, description *string) (*usecase.CompanyView, error) {
	args := m.Called(ctx, id, adminID, name, description)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyRepository) Delete(ctx context.Context, id, adminID uuid.UUID) error {
	args := m.Called(ctx, id, adminID)
	return args.Error(0)
}

type RuleRepository struct {
	mock.Mock
}

func (m *RuleRepository) Create(ctx context.Context, companyID uuid.UUID, requiredCoupons int32, reward string) (*usecase.RuleView, error) {
	args := m.Called(ctx, companyID, requiredCoupons, reward)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]usecase.RuleView, error) {
	args := m.Called(ctx, companyID)
	views, _ := args.Get(0).([]usecase.RuleView)
	return views, args.Error(1)
}

func (m *RuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.RuleView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleRepository) Update(ctx context.Context, id uuid.UUID, requiredCoupons int32, reward string) (*usecase.RuleView, error) {
	args := m.Called(ctx, id, requiredCoupons, reward)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) Insert(ctx context.Context, companyID, clientID uuid.UUID, barcode string) (*usecase.CouponView, error) {
	args := m.Called(ctx, companyID, clientID, barcode)
	view, _ := args.Get(0).(*usecase.CouponView)
	return view, args.Error(1)
}

func (m *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.CouponView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*usecase.CouponView)
	return view, args.Error(1)
}

func (m *CouponRepository) FindByBarcodeAndClient(ctx context.Context, barcode string, clientID uuid.UUID) (*usecase.CouponView, error) {
	args := m.Called(ctx, barcode, clientID)
	view, _ := args.Get(0).(*usecase.CouponView)
	return view, args.Error(1)
}

func (m *CouponRepository) ListByClient(ctx context.Context, clientID uuid.UUID) ([]usecase.CouponView, error) {
	args := m.Called(ctx, clientID)
	views, _ := args.Get(0).([]usecase.CouponView)
	return views, args.Error(1)
}

func (m *CouponRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]usecase.CouponView, error) {
	args := m.Called(ctx, companyID)
	views, _ := args.Get(0).([]usecase.CouponView)
	return views, args.Error(1)
}

func (m *CouponRepository) SetCount(ctx context.Context, id uuid.UUID, count int32) (bool, error) {
	args := m.Called(ctx, id, count)
	return args.Bool(0), args.Error(1)
}

func (m *CouponRepository) Increment(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CouponRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
