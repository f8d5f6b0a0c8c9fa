package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/services"
)

// ScanDeleter defines the interface that the scan deletion service must implement.
type ScanDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// NewDeleteScanHandler returns an HTTP handler removing a scan by id.
// @Summary Delete a scan
// @Description Remove a scan record and, best-effort, its stored image. Dentist role required.
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Scan id"
// @Success 200 {object} handlers.MessageResponse "Scan deleted"
// @Failure 400 {object} handlers.MessageResponse "Invalid scan id"
// @Failure 401 {object} handlers.MessageResponse "Missing token"
// @Failure 403 {object} handlers.MessageResponse "Wrong role"
// @Failure 404 {object} handlers.MessageResponse "Scan not found"
// @Failure 500 {object} handlers.MessageResponse "Store failure"
// @Router /scans/{id} [delete]
func NewDeleteScanHandler(svc ScanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid scan id.",
			})
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrScanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Scan not found.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Failed to delete scan.",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Scan deleted successfully.",
		})
	}
}
