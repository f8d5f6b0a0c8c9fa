package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/services"
)

// maxUploadSize bounds the multipart form held in memory per request.
const maxUploadSize = 32 << 20

// Uploader defines the interface that the scan upload service must implement.
type Uploader interface {
	Upload(ctx context.Context, meta services.ScanMetadata, image io.Reader, size int64, contentType string) (*models.ScanDB, error)
}

// UploadResponse represents a successful upload response
// swagger:model UploadResponse
type UploadResponse struct {
	// Success message
	// default: Scan uploaded successfully!
	Message string `json:"message"`

	// Generated scan id
	// default: 1
	ID int64 `json:"id"`
}

// NewUploadHandler returns an HTTP handler for scan uploads.
// @Summary Upload a scan
// @Description Store a scan image with patient metadata. Technician role required.
// @Tags scans
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param patientName formData string true "Patient full name"
// @Param patientId formData string true "Patient identifier"
// @Param scanType formData string true "Scan type (RGB)"
// @Param region formData string true "Scan region"
// @Param scanImage formData file true "Scan image file"
// @Success 200 {object} handlers.UploadResponse "Scan stored"
// @Failure 400 {object} handlers.MessageResponse "No image file provided"
// @Failure 401 {object} handlers.MessageResponse "Missing token"
// @Failure 403 {object} handlers.MessageResponse "Wrong role"
// @Failure 500 {object} handlers.MessageResponse "Store or object-host failure"
// @Router /upload [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid multipart form.",
			})
			return
		}

		meta := services.ScanMetadata{
			PatientName: r.FormValue("patientName"),
			PatientID:   r.FormValue("patientId"),
			ScanType:    r.FormValue("scanType"),
			Region:      r.FormValue("region"),
		}

		file, header, err := r.FormFile("scanImage")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "No image file provided.",
			})
			return
		}
		defer file.Close()

		scan, err := svc.Upload(r.Context(), meta, file, header.Size, header.Header.Get("Content-Type"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoImageProvided):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "No image file provided.",
				})
			case errors.Is(err, services.ErrObjectStore):
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Error uploading image to storage.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Failed to save scan.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UploadResponse{
			Message: "Scan uploaded successfully!",
			ID:      scan.ID,
		})
	}
}
