// Package database creates the schema and seeds the two demo accounts
// on first boot. There is no versioned migration history; every step is
// idempotent and runs on every start.
package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            BIGSERIAL PRIMARY KEY,
  email         TEXT      NOT NULL UNIQUE,
  password_hash TEXT      NOT NULL,
  role          TEXT      NOT NULL
);`,
	},
	{
		Name: "create_table_scans",
		SQL: `CREATE TABLE IF NOT EXISTS scans (
  id           BIGSERIAL PRIMARY KEY,
  patient_name TEXT NOT NULL,
  patient_id   TEXT NOT NULL,
  scan_type    TEXT NOT NULL,
  region       TEXT NOT NULL,
  image_url    TEXT NOT NULL,
  upload_date  TEXT NOT NULL
);`,
	},
	{
		Name: "create_index_scans_upload_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_scans_upload_date ON scans (upload_date DESC, id ASC);`,
	},
}

// seedAccount is a fixed account created at first boot.
type seedAccount struct {
	Email    string
	Password string
	Role     models.Role
}

var seedAccounts = []seedAccount{
	{Email: "tech@oralvis.com", Password: "password123", Role: models.RoleTechnician},
	{Email: "dentist@oralvis.com", Password: "password123", Role: models.RoleDentist},
}

// EnsureMigrated creates missing tables and seeds the demo accounts if
// the users table is empty.
func EnsureMigrated(ctx context.Context, db *sqlx.DB) error {
	for _, step := range steps {
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logger.Log.Errorw("migration step failed", "step", step.Name, "err", err)
			return fmt.Errorf("migration step %s: %w", step.Name, err)
		}
		logger.Log.Infow("migration step applied", "step", step.Name)
	}

	return seedUsers(ctx, db)
}

// seedUsers inserts the fixed accounts on first boot only. Accounts are
// immutable afterwards; a non-empty table is left untouched.
func seedUsers(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logger.Log.Infow("users already seeded, skipping", "count", count)
		return nil
	}

	for _, acc := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}

		const query = `INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3)`
		if _, err := db.ExecContext(ctx, query, acc.Email, string(hash), string(acc.Role)); err != nil {
			return fmt.Errorf("seed account %s: %w", acc.Email, err)
		}
		logger.Log.Infow("seed account created", "email", acc.Email, "role", acc.Role)
	}

	return nil
}
