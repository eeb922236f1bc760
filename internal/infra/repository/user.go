package repository

import (
	"context"
	"errors"

	"loyalty-coupon-api/internal/infra"
	"loyalty-coupon-api/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) usecase.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, email, name, role, passwordHash string) (*usecase.UserView, error) {
	const q = `INSERT INTO users (email, name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, role`

	var v usecase.UserView
	err := r.pool.QueryRow(ctx, q, email, name, role, passwordHash).
		Scan(&v.ID, &v.Email, &v.Name, &v.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return &v, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*usecase.UserView, string, error) {
	const q = `SELECT id, email, name, role, password_hash FROM users WHERE email = $1`

	var v usecase.UserView
	var hash string
	err := r.pool.QueryRow(ctx, q, email).Scan(&v.ID, &v.Email, &v.Name, &v.Role, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}
