package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"minisocial/internal/model"
)

const pgUniqueViolationCode = "23505"

// UserRepository is the Postgres-backed account store. Uniqueness of
// username and email is enforced by the store's own constraints and
// surfaced as model.ErrUserAlreadyExists.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, account model.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		account.ID, account.Username, account.Email, account.PasswordHash, account.CreatedAt)
	if isUniqueViolation(err) {
		return model.ErrUserAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE id = $1`, id).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find user by id: %w", err)
	}
	return a, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, password_hash, created_at
		 FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email)).
		Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find user by email: %w", err)
	}
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}
