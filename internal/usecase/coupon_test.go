package usecase_test

import (
	"context"
	"testing"

	"loyalty-coupon-api/internal/usecase"
	"loyalty-coupon-api/tests/common/builder"
	"loyalty-coupon-api/tests/mock/usecasemock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CouponLedgerTestSuite struct {
	suite.Suite
	couponRepo *usecasemock.CouponRepository
	ledger     usecase.CouponLedger
}

func (s *CouponLedgerTestSuite) SetupTest() {
	s.couponRepo = new(usecasemock.CouponRepository)
	s.ledger = usecase.NewCouponLedger(s.couponRepo)
}

func TestCouponLedgerSuite(t *testing.T) {
	suite.Run(t, new(CouponLedgerTestSuite))
}

func (s *CouponLedgerTestSuite) TestCreate() {
	b := builder.NewCouponBuilder()
	expected := b.BuildView()

	s.couponRepo.On("Insert", mock.Anything, b.CompanyID, b.ClientID, b.Barcode).Return(expected, nil)

	view, err := s.ledger.Create(context.Background(), b.ClientID, b.CompanyID, b.Barcode)
	s.Require().NoError(err)
	s.Equal(expected, view)
	s.EqualValues(0, view.Count)
}

func (s *CouponLedgerTestSuite) TestGetByID() {
	s.Run("returns the coupon when it exists", func() {
		s.SetupTest()
		b := builder.NewCouponBuilder().WithCount(3)
		expected := b.BuildView()

		s.couponRepo.On("FindByID", mock.Anything, b.ID).Return(expected, nil)

		view, err := s.ledger.GetByID(context.Background(), b.ID)
		s.Require().NoError(err)
		s.Equal(expected, view)
	})

	s.Run("absence is nil with no error", func() {
		s.SetupTest()
		id := uuid.New()

		s.couponRepo.On("FindByID", mock.Anything, id).Return(nil, nil)

		view, err := s.ledger.GetByID(context.Background(), id)
		s.NoError(err)
		s.Nil(view)
	})
}

func (s *CouponLedgerTestSuite) TestGetByBarcodeAndClient() {
	s.Run("resolves by barcode within one client", func() {
		s.SetupTest()
		b := builder.NewCouponBuilder()
		expected := b.BuildView()

		s.couponRepo.On("FindByBarcodeAndClient", mock.Anything, b.Barcode, b.ClientID).Return(expected, nil)

		view, err := s.ledger.GetByBarcodeAndClient(context.Background(), b.Barcode, b.ClientID)
		s.Require().NoError(err)
		s.Equal(expected, view)
	})

	s.Run("another client's barcode does not resolve", func() {
		s.SetupTest()
		b := builder.NewCouponBuilder()
		otherClient := uuid.New()

		s.couponRepo.On("FindByBarcodeAndClient", mock.Anything, b.Barcode, otherClient).Return(nil, nil)

		view, err := s.ledger.GetByBarcodeAndClient(context.Background(), b.Barcode, otherClient)
		s.NoError(err)
		s.Nil(view)
	})
}

func (s *CouponLedgerTestSuite) TestListByClient() {
	clientID := uuid.New()
	expected := []usecase.CouponView{*builder.NewCouponBuilder().BuildView()}

	s.couponRepo.On("ListByClient", mock.Anything, clientID).Return(expected, nil)

	views, err := s.ledger.ListByClient(context.Background(), clientID)
	s.Require().NoError(err)
	s.Equal(expected, views)
}

func (s *CouponLedgerTestSuite) TestListByCompany() {
	companyID := uuid.New()
	expected := []usecase.CouponView{*builder.NewCouponBuilder().BuildView()}

	s.couponRepo.On("ListByCompany", mock.Anything, companyID).Return(expected, nil)

	views, err := s.ledger.ListByCompany(context.Background(), companyID)
	s.Require().NoError(err)
	s.Equal(expected, views)
}

func (s *CouponLedgerTestSuite) TestSetCount() {
	s.Run("true when a row was updated", func() {
		s.SetupTest()
		id := uuid.New()

		s.couponRepo.On("SetCount", mock.Anything, id, int32(7)).Return(true, nil)

		ok, err := s.ledger.SetCount(context.Background(), id, 7)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("false when no coupon matched", func() {
		s.SetupTest()
		id := uuid.New()

		s.couponRepo.On("SetCount", mock.Anything, id, int32(7)).Return(false, nil)

		ok, err := s.ledger.SetCount(context.Background(), id, 7)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *CouponLedgerTestSuite) TestIncrement() {
	s.Run("true when a row was updated", func() {
		s.SetupTest()
		id := uuid.New()

		s.couponRepo.On("Increment", mock.Anything, id).Return(true, nil)

		ok, err := s.ledger.Increment(context.Background(), id)
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("false when no coupon matched", func() {
		s.SetupTest()
		id := uuid.New()

		s.couponRepo.On("Increment", mock.Anything, id).Return(false, nil)

		ok, err := s.ledger.Increment(context.Background(), id)
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *CouponLedgerTestSuite) TestDelete() {
	id := uuid.New()

	s.couponRepo.On("Delete", mock.Anything, id).Return(false, nil)

	ok, err := s.ledger.Delete(context.Background(), id)
	s.Require().NoError(err)
	s.False(ok)
}
