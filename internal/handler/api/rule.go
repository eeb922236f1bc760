package api

import (
	"errors"
	"net/http"

	"loyalty-coupon-api/internal/domain/rule"
	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	resdto "loyalty-coupon-api/internal/handler/dto/response"
	"loyalty-coupon-api/internal/handler/httperr"
	"loyalty-coupon-api/internal/handler/middleware"
	"loyalty-coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleHandler struct {
	ruleUseCase usecase.RuleUseCase
}

func NewRuleHandler(ruleUseCase usecase.RuleUseCase) *RuleHandler {
	return &RuleHandler{
		ruleUseCase: ruleUseCase,
	}
}

// @Summary Create a coupon rule
// @Tags coupon-rules
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRuleRequest true "Create request"
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /coupon-rules [post]
func (h *RuleHandler) Create(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return
	}

	var req reqdto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.ruleUseCase.Create(c.Request.Context(), adminID, req.CompanyID, req.RequiredCoupons, req.Reward)
	if err != nil {
		h.abortRuleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRuleView(view))
}

// @Summary List coupon rules for a company
// @Tags coupon-rules
// @Produce json
// @Param company_id path string true "Company ID"
// @Success 200 {array} resdto.RuleResponse
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /coupon-rules/company/{company_id} [get]
func (h *RuleHandler) ListByCompany(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(c.Param("company_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid company ID")
		return
	}

	views, err := h.ruleUseCase.ListByCompany(c.Request.Context(), adminID, companyID)
	if err != nil {
		h.abortRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleList(views))
}

// @Summary Get a coupon rule by ID
// @Tags coupon-rules
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Success 200 {object} resdto.RuleResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /coupon-rules/{rule_id} [get]
func (h *RuleHandler) Get(c *gin.Context) {
	adminID, ruleID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	view, err := h.ruleUseCase.Get(c.Request.Context(), adminID, ruleID)
	if err != nil {
		h.abortRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleView(view))
}

// @Summary Update a coupon rule
// @Tags coupon-rules
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Param request body reqdto.UpdateRuleRequest true "Update request"
// @Success 200 {object} resdto.RuleResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /coupon-rules/{rule_id} [put]
func (h *RuleHandler) Update(c *gin.Context) {
	adminID, ruleID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	view, err := h.ruleUseCase.Update(c.Request.Context(), adminID, ruleID, req.ToInput())
	if err != nil {
		h.abortRuleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRuleView(view))
}

// @Summary Delete a coupon rule
// @Tags coupon-rules
// @Param rule_id path string true "Rule ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Security BearerAuth
// @Router /coupon-rules/{rule_id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	adminID, ruleID, ok := h.pathIDs(c)
	if !ok {
		return
	}

	if err := h.ruleUseCase.Delete(c.Request.Context(), adminID, ruleID); err != nil {
		h.abortRuleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RuleHandler) pathIDs(c *gin.Context) (adminID, ruleID uuid.UUID, ok bool) {
	adminID, found := middleware.GetUserID(c)
	if !found {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid rule ID")
		return uuid.Nil, uuid.Nil, false
	}

	return adminID, ruleID, true
}

// A rule under another admin's company reads as forbidden, not missing:
// the rule row is real, only the transitive ownership check fails.
func (h *RuleHandler) abortRuleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Company not found")
	case errors.Is(err, usecase.ErrRuleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon rule not found")
	case errors.Is(err, usecase.ErrRuleForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not authorized to access this coupon rule")
	case errors.Is(err, rule.ErrInvalidRequiredCoupons):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Required coupons must be greater than 0")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
