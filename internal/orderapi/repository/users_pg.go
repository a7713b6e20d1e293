package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fuelmate/internal/common/db"
	"fuelmate/internal/orderapi/models"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	UpdateProfile(ctx context.Context, id int64, name, phone, address string) (models.User, error)
}

type UserRepo struct {
	conn *db.Conn
}

func NewUserRepo(conn *db.Conn) *UserRepo { return &UserRepo{conn: conn} }

func (r *UserRepo) Create(ctx context.Context, name, email, passwordHash string) (models.User, error) {
	var u models.User
	err := r.conn.QueryRow(ctx, `
INSERT INTO users (name, email, password_hash)
VALUES ($1, $2, $3)
RETURNING id, name, email, phone, address, created_at
`, name, email, passwordHash).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := r.conn.QueryRow(ctx, `
SELECT id, name, email, phone, address, created_at, password_hash
FROM users WHERE email = $1
`, email).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.CreatedAt, &u.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	err := r.conn.QueryRow(ctx, `
SELECT id, name, email, phone, address, created_at
FROM users WHERE id = $1
`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id int64, name, phone, address string) (models.User, error) {
	var u models.User
	err := r.conn.QueryRow(ctx, `
UPDATE users
SET name = COALESCE(NULLIF($2, ''), name),
    phone = $3,
    address = $4
WHERE id = $1
RETURNING id, name, email, phone, address, created_at
`, id, name, phone, address).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Address, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}
