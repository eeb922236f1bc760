package usecasemock

import (
	"context"

	"loyalty-coupon-api/internal/domain/auth"
	"loyalty-coupon-api/internal/domain/company"
	"loyalty-coupon-api/internal/domain/user"
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthUseCase struct {
	mock.Mock
}

func (m *AuthUseCase) Register(ctx context.Context, email user.Email, name user.Name, role user.Role, pw user.Password) (*usecase.UserView, error) {
	args := m.Called(ctx, email, name, role, pw)
	view, _ := args.Get(0).(*usecase.UserView)
	return view, args.Error(1)
}

func (m *AuthUseCase) Login(ctx context.Context, credentials auth.Credentials) (string, error) {
	args := m.Called(ctx, credentials)
	return args.String(0), args.Error(1)
}

type CompanyUseCase struct {
	mock.Mock
}

func (m *CompanyUseCase) Create(ctx context.Context, adminID uuid.UUID, name company.Name, description *string) (*usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, name, description)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyUseCase) List(ctx context.Context, adminID uuid.UUID, skip, limit int32) ([]usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, skip, limit)
	views, _ := args.Get(0).([]usecase.CompanyView)
	return views, args.Error(1)
}

func (m *CompanyUseCase) Get(ctx context.Context, adminID, companyID uuid.UUID) (*usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, companyID)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyUseCase) Update(ctx context.Context, adminID, companyID uuid.UUID, input usecase.UpdateCompanyInput) (*usecase.CompanyView, error) {
	args := m.Called(ctx, adminID, companyID, input)
	view, _ := args.Get(0).(*usecase.CompanyView)
	return view, args.Error(1)
}

func (m *CompanyUseCase) Delete(ctx context.Context, adminID, companyID uuid.UUID) error {
	args := m.Called(ctx, adminID, companyID)
	return args.Error(0)
}

type RuleUseCase struct {
	mock.Mock
}

func (m *RuleUseCase) Create(ctx context.Context, adminID, companyID uuid.UUID, requiredCoupons int32, reward string) (*usecase.RuleView, error) {
	args := m.Called(ctx, adminID, companyID, requiredCoupons, reward)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleUseCase) ListByCompany(ctx context.Context, adminID, companyID uuid.UUID) ([]usecase.RuleView, error) {
	args := m.Called(ctx, adminID, companyID)
	views, _ := args.Get(0).([]usecase.RuleView)
	return views, args.Error(1)
}

func (m *RuleUseCase) Get(ctx context.Context, adminID, ruleID uuid.UUID) (*usecase.RuleView, error) {
	args := m.Called(ctx, adminID, ruleID)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleUseCase) Update(ctx context.Context, adminID, ruleID uuid.UUID, input usecase.UpdateRuleInput) (*usecase.RuleView, error) {
	args := m.Called(ctx, adminID, ruleID, input)
	view, _ := args.Get(0).(*usecase.RuleView)
	return view, args.Error(1)
}

func (m *RuleUseCase) Delete(ctx context.Context, adminID, ruleID uuid.UUID) error {
	args := m.Called(ctx, adminID, ruleID)
	return args.Error(0)
}

type TokenValidator struct {
	mock.Mock
}

func (m *TokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	args := m.Called(tokenString)
	id, _ := args.Get(0).(uuid.UUID)
	role, _ := args.Get(1).(user.Role)
	return id, role, args.Error(2)
}
