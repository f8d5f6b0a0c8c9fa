package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
)

// ScanLister defines the interface that the scan listing service must implement.
type ScanLister interface {
	List(ctx context.Context) ([]models.ScanDB, error)
}

// ScansResponse wraps the scan listing
// swagger:model ScansResponse
type ScansResponse struct {
	// Scans, newest first
	Scans []models.ScanDB `json:"scans"`
}

// NewScansHandler returns an HTTP handler listing all scans newest-first.
// @Summary List scans
// @Description List all scan records, most recent upload first. Dentist role required.
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ScansResponse "Scan records"
// @Failure 401 {object} handlers.MessageResponse "Missing token"
// @Failure 403 {object} handlers.MessageResponse "Wrong role"
// @Failure 500 {object} handlers.MessageResponse "Store failure"
// @Router /scans [get]
func NewScansHandler(svc ScanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		scans, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Failed to load scans.",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ScansResponse{
			Scans: scans,
		})
	}
}
