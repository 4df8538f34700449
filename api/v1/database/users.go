package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/bp0001/backend/api/v1/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNoUserError    = errors.New("user does not exist")
	ErrUsernameExists = errors.New("username already exists")
	ErrDatabaseError  = errors.New("database error occurred")
)

const uniqueViolation = "23505"

func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrNoUserError)
}

func IsUsernameExistsError(err error) bool {
	return errors.Is(err, ErrUsernameExists)
}

// CreateUser inserts the user and fills in the generated ID and timestamps.
func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	insertQuery := `
		INSERT INTO users (username, display_name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`

	err := s.pool.QueryRow(ctx, insertQuery, user.Username, user.DisplayName).Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: username '%s' is already taken", ErrUsernameExists, user.Username)
		}
		s.log.Errorw("failed to create user", "error", err, "username", user.Username)
		return fmt.Errorf("%w: failed to create user: %w", ErrDatabaseError, err)
	}

	return nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	getQuery := `
		SELECT id, username, display_name, created_at, updated_at
		FROM users
		WHERE username = $1`

	var user models.User
	err := s.pool.QueryRow(ctx, getQuery, username).Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: username '%s'", ErrNoUserError, username)
		}
		s.log.Errorw("failed to retrieve user", "error", err, "username", username)
		return nil, fmt.Errorf("%w: failed to retrieve user: %w", ErrDatabaseError, err)
	}

	return &user, nil
}
