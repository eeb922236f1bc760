package usecase_test

import (
	"context"
	"testing"

	"loyalty-coupon-api/internal/domain/rule"
	"loyalty-coupon-api/internal/usecase"
	"loyalty-coupon-api/tests/common/builder"
	"loyalty-coupon-api/tests/mock/usecasemock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RuleUseCaseTestSuite struct {
	suite.Suite
	ruleRepo    *usecasemock.RuleRepository
	companyRepo *usecasemock.CompanyRepository
	uc          usecase.RuleUseCase
}

func (s *RuleUseCaseTestSuite) SetupTest() {
	s.ruleRepo = new(usecasemock.RuleRepository)
	s.companyRepo = new(usecasemock.CompanyRepository)
	s.uc = usecase.NewRuleUseCase(s.ruleRepo, s.companyRepo)
}

func TestRuleUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RuleUseCaseTestSuite))
}

// ownCompany stubs the admin-scoped company lookup to succeed.
func (s *RuleUseCaseTestSuite) ownCompany(companyID, adminID uuid.UUID) {
	view := builder.NewCompanyBuilder().WithAdminID(adminID).BuildView()
	view.ID = companyID
	s.companyRepo.On("FindByIDForAdmin", mock.Anything, companyID, adminID).Return(view, nil)
}

func (s *RuleUseCaseTestSuite) TestCreate() {
	s.Run("creates a rule under an owned company", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		expected := b.BuildView()

		s.ownCompany(b.CompanyID, adminID)
		s.ruleRepo.On("Create", mock.Anything, b.CompanyID, b.RequiredCoupons, b.Reward).Return(expected, nil)

		view, err := s.uc.Create(context.Background(), adminID, b.CompanyID, b.RequiredCoupons, b.Reward)
		s.Require().NoError(err)
		s.Equal(expected, view)
	})

	s.Run("a foreign company reads as not found", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()

		s.companyRepo.On("FindByIDForAdmin", mock.Anything, b.CompanyID, adminID).Return(nil, notFoundErr())

		_, err := s.uc.Create(context.Background(), adminID, b.CompanyID, b.RequiredCoupons, b.Reward)
		s.ErrorIs(err, usecase.ErrCompanyNotFound)
		s.ruleRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("a non-positive threshold is rejected after the ownership check", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder().WithRequiredCoupons(0)

		s.ownCompany(b.CompanyID, adminID)

		_, err := s.uc.Create(context.Background(), adminID, b.CompanyID, b.RequiredCoupons, b.Reward)
		s.ErrorIs(err, rule.ErrInvalidRequiredCoupons)
		s.ruleRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *RuleUseCaseTestSuite) TestListByCompany() {
	adminID := uuid.New()
	companyID := uuid.New()
	expected := []usecase.RuleView{*builder.NewRuleBuilder().WithCompanyID(companyID).BuildView()}

	s.ownCompany(companyID, adminID)
	s.ruleRepo.On("ListByCompany", mock.Anything, companyID).Return(expected, nil)

	views, err := s.uc.ListByCompany(context.Background(), adminID, companyID)
	s.Require().NoError(err)
	s.Equal(expected, views)
}

func (s *RuleUseCaseTestSuite) TestGet() {
	s.Run("returns a rule under an owned company", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		expected := b.BuildView()

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(expected, nil)
		s.ownCompany(b.CompanyID, adminID)

		view, err := s.uc.Get(context.Background(), adminID, b.ID)
		s.Require().NoError(err)
		s.Equal(expected, view)
	})

	s.Run("an absent rule is not found", func() {
		s.SetupTest()
		adminID := uuid.New()
		ruleID := uuid.New()

		s.ruleRepo.On("FindByID", mock.Anything, ruleID).Return(nil, notFoundErr())

		_, err := s.uc.Get(context.Background(), adminID, ruleID)
		s.ErrorIs(err, usecase.ErrRuleNotFound)
	})

	s.Run("an existing rule under a foreign company is forbidden, not missing", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.companyRepo.On("FindByIDForAdmin", mock.Anything, b.CompanyID, adminID).Return(nil, notFoundErr())

		_, err := s.uc.Get(context.Background(), adminID, b.ID)
		s.ErrorIs(err, usecase.ErrRuleForbidden)
		s.NotErrorIs(err, usecase.ErrRuleNotFound)
	})
}

func (s *RuleUseCaseTestSuite) TestUpdate() {
	s.Run("keeps fields the input leaves out", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		newReward := "Free pastry"
		updated := b.Clone().BuildView()
		updated.Reward = newReward

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.ownCompany(b.CompanyID, adminID)
		s.ruleRepo.On("Update", mock.Anything, b.ID, b.RequiredCoupons, newReward).Return(updated, nil)

		view, err := s.uc.Update(context.Background(), adminID, b.ID, usecase.UpdateRuleInput{Reward: &newReward})
		s.Require().NoError(err)
		s.Equal(updated, view)
	})

	s.Run("a non-positive replacement threshold is rejected", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		invalid := int32(-5)

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.ownCompany(b.CompanyID, adminID)

		_, err := s.uc.Update(context.Background(), adminID, b.ID, usecase.UpdateRuleInput{RequiredCoupons: &invalid})
		s.ErrorIs(err, rule.ErrInvalidRequiredCoupons)
		s.ruleRepo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	s.Run("an untouched threshold is not re-validated", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		newReward := "Sticker"
		updated := b.Clone().BuildView()
		updated.Reward = newReward

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.ownCompany(b.CompanyID, adminID)
		s.ruleRepo.On("Update", mock.Anything, b.ID, b.RequiredCoupons, newReward).Return(updated, nil)

		_, err := s.uc.Update(context.Background(), adminID, b.ID, usecase.UpdateRuleInput{Reward: &newReward})
		s.NoError(err)
	})

	s.Run("a foreign rule cannot be updated", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()
		newReward := "Hijack"

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.companyRepo.On("FindByIDForAdmin", mock.Anything, b.CompanyID, adminID).Return(nil, notFoundErr())

		_, err := s.uc.Update(context.Background(), adminID, b.ID, usecase.UpdateRuleInput{Reward: &newReward})
		s.ErrorIs(err, usecase.ErrRuleForbidden)
	})
}

func (s *RuleUseCaseTestSuite) TestDelete() {
	s.Run("deletes a rule under an owned company", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.ownCompany(b.CompanyID, adminID)
		s.ruleRepo.On("Delete", mock.Anything, b.ID).Return(nil)

		s.NoError(s.uc.Delete(context.Background(), adminID, b.ID))
	})

	s.Run("a foreign rule cannot be deleted", func() {
		s.SetupTest()
		adminID := uuid.New()
		b := builder.NewRuleBuilder()

		s.ruleRepo.On("FindByID", mock.Anything, b.ID).Return(b.BuildView(), nil)
		s.companyRepo.On("FindByIDForAdmin", mock.Anything, b.CompanyID, adminID).Return(nil, notFoundErr())

		s.ErrorIs(s.uc.Delete(context.Background(), adminID, b.ID), usecase.ErrRuleForbidden)
		s.ruleRepo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	})
}
