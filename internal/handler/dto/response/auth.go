package response

import "loyalty-coupon-api/internal/usecase"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func FromUserView(v *usecase.UserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID.String(),
		Email: v.Email,
		Name:  v.Name,
		Role:  v.Role,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewTokenResponse(token string) *TokenResponse {
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}
}
