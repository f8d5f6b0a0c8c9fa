package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oralvis/oralvis-server/internal/models"
)

func TestScansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockScanLister(ctrl)
	handler := NewScansHandler(mockSvc)

	t.Run("success newest first", func(t *testing.T) {
		want := []models.ScanDB{
			{ID: 3, PatientName: "c", UploadDate: "2025-01-03T10:00:00Z"},
			{ID: 2, PatientName: "b", UploadDate: "2025-01-02T10:00:00Z"},
			{ID: 1, PatientName: "a", UploadDate: "2025-01-01T10:00:00Z"},
		}
		mockSvc.EXPECT().List(gomock.Any()).Return(want, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp ScansResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, want, resp.Scans)
	})

	t.Run("empty store", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return([]models.ScanDB{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"scans":[]}`, rr.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/scans", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
