package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/dberrors"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

// AdminUserRepository handles database operations for admin accounts.
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new admin user repository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

// GetByUsername retrieves an admin account by username.
func (r *AdminUserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`

	var u models.AdminUser
	err := r.db.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &u, nil
}

// Create inserts a new admin account.
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrConflict
		}
		logger.Error().Err(err).Msg("Error executing create admin user query")
		return err
	}

	return nil
}
