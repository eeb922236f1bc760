package api

import (
	"errors"
	"net/http"

	"loyalty-coupon-api/internal/domain/company"
	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	resdto "loyalty-coupon-api/internal/handler/dto/response"
	"loyalty-coupon-api/internal/handler/httperr"
	"loyalty-coupon-api/internal/handler/middleware"
	"loyalty-coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	companyUseCase usecase.CompanyUseCase
}

func NewCompanyHandler(companyUseCase usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{
		companyUseCase: companyUseCase,
	}
}

// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCompanyRequest true "Create request"
// @Success 201 {object} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Security BearerAuth
// @Router /companies [post]
func (h *CompanyHandler) Create(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return
	}

	var req reqdto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	name, description, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		return
	}

	view, err := h.companyUseCase.Create(c.Request.Context(), adminID, name, description)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCompanyView(view))
}

// @Summary List companies owned by the authenticated admin
// @Tags companies
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} resdto.CompanyResponse
// @Failure 400 {object} httperr.Response
// @Security BearerAuth
// @Router /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return
	}

	var query reqdto.ListCompaniesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters")
		return
	}

	views, err := h.companyUseCase.List(c.Request.Context(), adminID, query.Skip, query.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyList(views))
}

// @Summary Get a company by ID
// @Tags companies
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /companies/{company_id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	adminID, companyID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	view, err := h.companyUseCase.Get(c.Request.Context(), adminID, companyID)
	if err != nil {
		h.abortCompanyError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Update a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param request body reqdto.UpdateCompanyRequest true "Update request"
// @Success 200 {object} resdto.CompanyResponse
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /companies/{company_id} [put]
func (h *CompanyHandler) Update(c *gin.Context) {
	adminID, companyID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.companyUseCase.Update(c.Request.Context(), adminID, companyID, req.ToInput())
	if err != nil {
		h.abortCompanyError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCompanyView(view))
}

// @Summary Delete a company
// @Tags companies
// @Param company_id path string true "Company ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /companies/{company_id} [delete]
func (h *CompanyHandler) Delete(c *gin.Context) {
	adminID, companyID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	if err := h.companyUseCase.Delete(c.Request.Context(), adminID, companyID); err != nil {
		h.abortCompanyError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CompanyHandler) pathIDs(c *gin.Context) (adminID, companyID uuid.UUID, ok bool) {
	adminID, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID")
		return uuid.Nil, uuid.Nil, false
	}

	return adminID, companyID, true
}

func (h *CompanyHandler) abortCompanyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found")
	case errors.Is(err, company.ErrInvalidName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
