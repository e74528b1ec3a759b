package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/auth"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/domain/user"
	"github.com/admffolador/painel-gta-helipa-valley1/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.Repository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, oauth_provider, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`

	var usr user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.OAuthProvider, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}

// GetByID implements user.Repository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	query := `
		SELECT id, email, password_hash, oauth_provider, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var usr user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.OAuthProvider, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, auth.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return usr, nil
}

// Create implements user.Repository.
func (u *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, email, password_hash, oauth_provider)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newUser.ID, newUser.Email, newUser.PasswordHash, newUser.OAuthProvider).
		Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}
