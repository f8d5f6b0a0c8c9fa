package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/storage"
)

var (
	// ErrNoImageProvided is returned when an upload carries no image bytes.
	ErrNoImageProvided = errors.New("no image file provided")
	// ErrObjectStore is returned when storing the image in the object host fails.
	ErrObjectStore = errors.New("object store failure")
	// ErrScanNotFound is returned when a scan id does not exist.
	ErrScanNotFound = errors.New("scan not found")
)

// ScanWriter defines write operations for scan rows.
type ScanWriter interface {
	Save(ctx context.Context, scan models.ScanDB) (int64, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ScanReader defines read operations for scan rows.
type ScanReader interface {
	GetByID(ctx context.Context, id int64) (*models.ScanDB, error)
	List(ctx context.Context) ([]models.ScanDB, error)
}

// ObjectStorage is the object-store client the service coordinates
// scan metadata with.
type ObjectStorage interface {
	Put(ctx context.Context, r io.Reader, size int64, contentType string) (storage.UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// ScanMetadata is the patient metadata supplied with an upload.
type ScanMetadata struct {
	PatientName string
	PatientID   string
	ScanType    string
	Region      string
}

// ScanService coordinates the scan store and the object store. The two
// are kept in sync best-effort only: a metadata insert failing after a
// successful image upload leaves an orphaned object, and a metadata
// delete proceeds even when the image delete fails.
type ScanService struct {
	writer ScanWriter
	reader ScanReader
	store  ObjectStorage
	now    func() time.Time
}

// NewScanService creates a new ScanService.
func NewScanService(writer ScanWriter, reader ScanReader, store ObjectStorage) *ScanService {
	return &ScanService{
		writer: writer,
		reader: reader,
		store:  store,
		now:    time.Now,
	}
}

// Upload stores the image in the object store, then inserts the scan
// row referencing it. A store failure aborts before any row is written.
func (svc *ScanService) Upload(ctx context.Context, meta ScanMetadata, image io.Reader, size int64, contentType string) (*models.ScanDB, error) {
	if image == nil || size <= 0 {
		return nil, ErrNoImageProvided
	}

	res, err := svc.store.Put(ctx, image, size, contentType)
	if err != nil {
		logger.Log.Errorw("failed to store image", "patient_id", meta.PatientID, "err", err)
		return nil, ErrObjectStore
	}

	uploadDate := svc.now().UTC().Format(time.RFC3339)

	scan := models.ScanDB{
		PatientName: meta.PatientName,
		PatientID:   meta.PatientID,
		ScanType:    meta.ScanType,
		Region:      meta.Region,
		ImageURL:    res.URL,
		UploadDate:  uploadDate,
	}

	id, err := svc.writer.Save(ctx, scan)
	if err != nil {
		// No compensating delete: the uploaded object stays orphaned.
		logger.Log.Errorw("failed to save scan, object orphaned", "key", res.Key, "err", err)
		return nil, err
	}

	scan.ID = id
	return &scan, nil
}

// List returns all scans newest-first.
func (svc *ScanService) List(ctx context.Context) ([]models.ScanDB, error) {
	scans, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list scans", "err", err)
		return nil, err
	}
	return scans, nil
}

// Delete removes a scan row and, best-effort, its stored image. An
// object-store failure is logged and never blocks the metadata delete.
func (svc *ScanService) Delete(ctx context.Context, id int64) error {
	scan, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get scan", "id", id, "err", err)
		return err
	}
	if scan == nil {
		return ErrScanNotFound
	}

	key := storage.KeyFromURL(scan.ImageURL)
	if err := svc.store.Delete(ctx, key); err != nil {
		logger.Log.Errorw("failed to delete image, continuing", "id", id, "key", key, "err", err)
	}

	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete scan", "id", id, "err", err)
		return err
	}
	if !deleted {
		// Row vanished between lookup and delete.
		return ErrScanNotFound
	}

	return nil
}
