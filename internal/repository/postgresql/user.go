package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hamkar/worklog-backend-go/internal/domain/user"
	"github.com/hamkar/worklog-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, telegram_id, email, name, password_hash, created_at, updated_at`

// Create implements user.UserRepository.
func (u *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		INSERT INTO users (telegram_id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.TelegramID,
		newUser.Email,
		newUser.Name,
		newUser.PasswordHash,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "telegram") {
				return user.User{}, user.ErrTelegramIDExists
			}
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (u *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return u.getBy(ctx, `id = $1`, id)
}

// GetByEmail implements user.UserRepository.
func (u *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return u.getBy(ctx, `email = $1`, email)
}

// GetByTelegramID implements user.UserRepository.
func (u *userRepository) GetByTelegramID(ctx context.Context, telegramID string) (user.User, error) {
	return u.getBy(ctx, `telegram_id = $1`, telegramID)
}

func (u *userRepository) getBy(ctx context.Context, where string, arg interface{}) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	var usr user.User
	err := q.QueryRow(ctx, query, arg).Scan(
		&usr.ID, &usr.TelegramID, &usr.Email, &usr.Name, &usr.PasswordHash,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return usr, nil
}
