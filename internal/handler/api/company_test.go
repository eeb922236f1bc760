package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"loyalty-coupon-api/internal/handler/api"
	resdto "loyalty-coupon-api/internal/handler/dto/response"
	"loyalty-coupon-api/internal/usecase"
	"loyalty-coupon-api/tests/common/builder"
	"loyalty-coupon-api/tests/common/httptest"
	"loyalty-coupon-api/tests/common/testutil"
	"loyalty-coupon-api/tests/mock/usecasemock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CompanyHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	companyUseCase *usecasemock.CompanyUseCase
	handler        *api.CompanyHandler
	adminID        uuid.UUID
}

func (s *CompanyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.adminID = uuid.New()

	s.companyUseCase = new(usecasemock.CompanyUseCase)
	s.handler = api.NewCompanyHandler(s.companyUseCase)

	// Stands in for the auth middleware chain.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.adminID)
	})

	s.router.POST("/companies", s.handler.Create)
	s.router.GET("/companies", s.handler.List)
	s.router.GET("/companies/:company_id", s.handler.Get)
	s.router.PUT("/companies/:company_id", s.handler.Update)
	s.router.DELETE("/companies/:company_id", s.handler.Delete)
}

func TestCompanyHandlerSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}

func (s *CompanyHandlerTestSuite) TestCreate() {
	url := "/companies"

	s.Run("success: 201 Created with the owner stamped from the token", func() {
		s.SetupTest()
		b := builder.NewCompanyBuilder().WithAdminID(s.adminID)
		view := b.BuildView()

		s.companyUseCase.On("Create", mock.Anything, s.adminID, mock.Anything, b.Description).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildCreateDTO(), "")

		var response resdto.CompanyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(s.adminID.String(), response.AdminID)
		s.Equal(b.Name, response.Name)
	})

	s.Run("error: 400 when the name is missing", func() {
		s.SetupTest()
		body := testutil.DtoMap(s.T(), builder.NewCompanyBuilder().BuildCreateDTO(), testutil.Field("name", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CompanyHandlerTestSuite) TestList() {
	s.Run("success: 200 OK with defaults skip=0 limit=10", func() {
		s.SetupTest()
		views := []usecase.CompanyView{*builder.NewCompanyBuilder().WithAdminID(s.adminID).BuildView()}

		s.companyUseCase.On("List", mock.Anything, s.adminID, int32(0), int32(10)).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies", nil, "")

		var response []resdto.CompanyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: 200 OK with explicit bounds", func() {
		s.SetupTest()
		s.companyUseCase.On("List", mock.Anything, s.adminID, int32(5), int32(100)).
			Return([]usecase.CompanyView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies?skip=5&limit=100", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on out-of-range pagination", func() {
		cases := []struct {
			name  string
			query string
		}{
			{name: "negative skip", query: "skip=-1"},
			{name: "zero limit", query: "limit=0"},
			{name: "limit above 100", query: "limit=101"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies?"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pagination parameters")
				s.companyUseCase.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})
}

func (s *CompanyHandlerTestSuite) TestGet() {
	s.Run("success: 200 OK", func() {
		s.SetupTest()
		b := builder.NewCompanyBuilder().WithAdminID(s.adminID)
		view := b.BuildView()

		s.companyUseCase.On("Get", mock.Anything, s.adminID, b.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies/"+b.ID.String(), nil, "")

		var response resdto.CompanyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(b.ID.String(), response.ID)
	})

	s.Run("error: 404 when absent or owned by someone else", func() {
		s.SetupTest()
		companyID := uuid.New()

		s.companyUseCase.On("Get", mock.Anything, s.adminID, companyID).Return(nil, usecase.ErrCompanyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies/"+companyID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Company not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/companies/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid company ID")
	})
}

func (s *CompanyHandlerTestSuite) TestUpdate() {
	s.Run("success: 200 OK on a partial update", func() {
		s.SetupTest()
		b := builder.NewCompanyBuilder().WithAdminID(s.adminID)
		updated := b.Clone().WithName("Renamed").BuildView()

		s.companyUseCase.On("Update", mock.Anything, s.adminID, b.ID, mock.Anything).Return(updated, nil)

		body := map[string]any{"name": "Renamed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/companies/"+b.ID.String(), body, "")

		var response resdto.CompanyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Renamed", response.Name)
	})

	s.Run("error: 404 when the company is not owned", func() {
		s.SetupTest()
		companyID := uuid.New()

		s.companyUseCase.On("Update", mock.Anything, s.adminID, companyID, mock.Anything).
			Return(nil, usecase.ErrCompanyNotFound)

		body := map[string]any{"name": "Renamed"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/companies/"+companyID.String(), body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Company not found")
	})
}

func (s *CompanyHandlerTestSuite) TestDelete() {
	s.Run("success: 204 No Content", func() {
		s.SetupTest()
		companyID := uuid.New()

		s.companyUseCase.On("Delete", mock.Anything, s.adminID, companyID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/companies/"+companyID.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code, fmt.Sprintf("Response: %s", rec.Body.String()))
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when the company is not owned", func() {
		s.SetupTest()
		companyID := uuid.New()

		s.companyUseCase.On("Delete", mock.Anything, s.adminID, companyID).Return(usecase.ErrCompanyNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/companies/"+companyID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Company not found")
	})
}
