package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"food-picker/apperrors"
	"food-picker/models"

	"github.com/lib/pq"
)

const (
	findUserSQL   = `SELECT id, username, password_hash FROM users WHERE username = $1`
	insertUserSQL = `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id`

	uniqueViolation = pq.ErrorCode("23505")
)

// UserDAO reads and writes admin accounts.
type UserDAO struct {
	db *sql.DB
}

func NewUserDAO(db *sql.DB) *UserDAO {
	return &UserDAO{db: db}
}

// FindByUsername returns apperrors.ErrNotFound when no such user exists.
func (dao *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := dao.db.QueryRowContext(ctx, findUserSQL, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

// Create inserts a user. A taken username is reported as a ValidationError.
func (dao *UserDAO) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := &models.User{Username: username, PasswordHash: passwordHash}
	err := dao.db.QueryRowContext(ctx, insertUserSQL, username, passwordHash).Scan(&u.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, apperrors.NewValidationError("username", "already exists")
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}
