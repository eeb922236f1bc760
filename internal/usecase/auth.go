package usecase

import (
	"context"

	"loyalty-coupon-api/internal/domain/auth"
	"loyalty-coupon-api/internal/domain/user"
	"loyalty-coupon-api/internal/infra"
	"loyalty-coupon-api/internal/pkg/errs"
	"loyalty-coupon-api/internal/pkg/jwt"
	"loyalty-coupon-api/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrTokenGeneration        = errs.New("token generation failed")
)

// UserView is what the identity layer exposes; the password hash never
// leaves the repository boundary except for login comparison.
type UserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

type UserRepository interface {
	Create(ctx context.Context, email, name, role, passwordHash string) (*UserView, error)
	// FindByEmail returns the view plus the stored hash. Absence is a
	// KindNotFound repository error.
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, email user.Email, name user.Name, role user.Role, pw user.Password) (*UserView, error)
	// Login never distinguishes an unknown email from a wrong password.
	Login(ctx context.Context, credentials auth.Credentials) (string, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, email user.Email, name user.Name, role user.Role, pw user.Password) (*UserView, error) {
	// Existence check is a plain lookup; there is no unique index behind it.
	_, _, err := a.userRepo.FindByEmail(ctx, email.Value())
	if err == nil {
		return nil, ErrEmailAlreadyRegistered
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, err
	}

	return a.userRepo.Create(ctx, email.Value(), name.Value(), role.String(), hash)
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials auth.Credentials) (string, error) {
	view, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return "", ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(view.ID, view.Email, role)
	if err != nil {
		return "", errs.Mark(err, ErrTokenGeneration)
	}

	return token, nil
}
