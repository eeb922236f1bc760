package api

import (
	"errors"
	"net/http"

	"loyalty-coupon-api/internal/domain/auth"
	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	resdto "loyalty-coupon-api/internal/handler/dto/response"
	"loyalty-coupon-api/internal/handler/httperr"
	"loyalty-coupon-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	email, name, role, pw, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		return
	}

	view, err := h.authUseCase.Register(c.Request.Context(), email, name, role, pw)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyRegistered) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already registered")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data")
		return
	}

	h.issueToken(c, credentials)
}

// @Summary OAuth2 password flow token endpoint
// @Description Form-encoded variant of login; username carries the email.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var form reqdto.TokenForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format")
		return
	}

	credentials, err := form.ToDomain()
	if err != nil {
		// Fail closed: malformed credentials read the same as wrong ones.
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect email or password")
		return
	}

	h.issueToken(c, credentials)
}

func (h *AuthHandler) issueToken(c *gin.Context, credentials auth.Credentials) {
	token, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect email or password")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.NewTokenResponse(token))
}
