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

type ScanWriteRepository struct {
	db *sqlx.DB
}

func NewScanWriteRepository(db *sqlx.DB) *ScanWriteRepository {
	return &ScanWriteRepository{db: db}
}

// Save inserts a new scan row and returns its generated id.
func (r *ScanWriteRepository) Save(ctx context.Context, scan models.ScanDB) (int64, error) {
	const query = `
		INSERT INTO scans (patient_name, patient_id, scan_type, region, image_url, upload_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	args := []any{scan.PatientName, scan.PatientID, scan.ScanType, scan.Region, scan.ImageURL, scan.UploadDate}

	var id int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}

// Delete removes a scan row by id and reports whether a row was
// actually deleted, so callers can surface not-found races.
func (r *ScanWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM scans WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

type ScanReadRepository struct {
	db *sqlx.DB
}

func NewScanReadRepository(db *sqlx.DB) *ScanReadRepository {
	return &ScanReadRepository{db: db}
}

// GetByID returns the scan with the given id, or (nil, nil) when no
// such scan exists.
func (r *ScanReadRepository) GetByID(ctx context.Context, id int64) (*models.ScanDB, error) {
	const query = `
		SELECT id, patient_name, patient_id, scan_type, region, image_url, upload_date
		FROM scans
		WHERE id = $1
		LIMIT 1
	`

	var scan models.ScanDB
	err := r.db.GetContext(ctx, &scan, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &scan, nil
}

// List returns all scans newest-first. Equal upload timestamps keep
// insertion order (ids are monotonic).
func (r *ScanReadRepository) List(ctx context.Context) ([]models.ScanDB, error) {
	const query = `
		SELECT id, patient_name, patient_id, scan_type, region, image_url, upload_date
		FROM scans
		ORDER BY upload_date DESC, id ASC
	`

	scans := []models.ScanDB{}
	err := r.db.SelectContext(ctx, &scans, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(scans),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return scans, nil
}
