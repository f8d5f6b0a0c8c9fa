package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the account with the given email, or (nil, nil)
// when no such account exists. Email comparison is case-sensitive.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	const query = `
		SELECT id, email, password_hash, role
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &account, nil
}
