package builder

import (
	reqdto "loyalty-coupon-api/internal/handler/dto/request"
	"loyalty-coupon-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserBuilder struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Role     string
	Password string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Name:     "Test Admin",
		Role:     "admin",
		Password: "password123",
	}
}

// Clone returns an independent copy so one test case can diverge from
// another without sharing state.
func (u *UserBuilder) Clone() *UserBuilder {
	var c UserBuilder
	_ = copier.Copy(&c, u)
	return &c
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    u.Email,
		Name:     u.Name,
		Role:     u.Role,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    u.Email,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildView() *usecase.UserView {
	return &usecase.UserView{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
