package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/services"
)

// buildUploadForm builds a multipart body with the given metadata and
// optional image content.
func buildUploadForm(t *testing.T, meta map[string]string, image []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for k, v := range meta {
		assert.NoError(t, w.WriteField(k, v))
	}
	if image != nil {
		fw, err := w.CreateFormFile("scanImage", "scan.jpg")
		assert.NoError(t, err)
		_, err = fw.Write(image)
		assert.NoError(t, err)
	}
	assert.NoError(t, w.Close())

	return &body, w.FormDataContentType()
}

var uploadMeta = map[string]string{
	"patientName": "Jane Doe",
	"patientId":   "P1",
	"scanType":    models.ScanTypeRGB,
	"region":      models.RegionFrontal,
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUploader(ctrl)
	handler := NewUploadHandler(mockSvc)

	t.Run("success", func(t *testing.T) {
		image := []byte("jpeg bytes")

		mockSvc.EXPECT().
			Upload(gomock.Any(), services.ScanMetadata{
				PatientName: "Jane Doe",
				PatientID:   "P1",
				ScanType:    models.ScanTypeRGB,
				Region:      models.RegionFrontal,
			}, gomock.Any(), int64(len(image)), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ services.ScanMetadata, r io.Reader, _ int64, _ string) (*models.ScanDB, error) {
				got, err := io.ReadAll(r)
				assert.NoError(t, err)
				assert.Equal(t, image, got)
				return &models.ScanDB{ID: 42}, nil
			})

		body, contentType := buildUploadForm(t, uploadMeta, image)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp UploadResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Scan uploaded successfully!", resp.Message)
	})

	t.Run("missing image file", func(t *testing.T) {
		body, contentType := buildUploadForm(t, uploadMeta, nil)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp MessageResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "No image file provided.", resp.Message)
	})

	t.Run("not multipart", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewBufferString("plain"))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty image rejected by service", func(t *testing.T) {
		mockSvc.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrNoImageProvided)

		body, contentType := buildUploadForm(t, uploadMeta, []byte{})
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("object store failure", func(t *testing.T) {
		image := []byte("jpeg bytes")

		mockSvc.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrObjectStore)

		body, contentType := buildUploadForm(t, uploadMeta, image)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp MessageResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Error uploading image to storage.", resp.Message)
	})

	t.Run("store failure", func(t *testing.T) {
		image := []byte("jpeg bytes")

		mockSvc.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("constraint violation"))

		body, contentType := buildUploadForm(t, uploadMeta, image)
		req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
		req.Header.Set("Content-Type", contentType)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var resp MessageResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Failed to save scan.", resp.Message)
	})
}
