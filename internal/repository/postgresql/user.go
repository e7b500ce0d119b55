package postgresql

import (
	"context"
	"fmt"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/user"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, pgx.ErrNoRows
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return result, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, pgx.ErrNoRows
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return result, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, email, password_hash, role, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, email, password_hash, role, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query, newUser.Email, newUser.PasswordHash, newUser.Role).Scan(
		&result.ID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}
