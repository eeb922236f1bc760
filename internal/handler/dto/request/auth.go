package request

import (
	"loyalty-coupon-api/internal/domain/auth"
	"loyalty-coupon-api/internal/domain/user"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToDomain() (user.Email, user.Name, user.Role, user.Password, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Email{}, user.Name{}, "", user.Password{}, err
	}
	name, err := user.NewName(r.Name)
	if err != nil {
		return user.Email{}, user.Name{}, "", user.Password{}, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return user.Email{}, user.Name{}, "", user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Email{}, user.Name{}, "", user.Password{}, err
	}
	return email, name, role, pw, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Email, r.Password)
}

// TokenForm is the OAuth2 password flow body; username carries the email.
type TokenForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (r *TokenForm) ToDomain() (auth.Credentials, error) {
	return auth.NewCredentials(r.Username, r.Password)
}
