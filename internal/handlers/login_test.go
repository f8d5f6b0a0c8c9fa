package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oralvis/oralvis-server/internal/jwt"
	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: LoginRequest{
				Email:    "tech@oralvis.com",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "tech@oralvis.com", "password123").
					Return("JWT_TOKEN", models.RoleTechnician, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &LoginResponse{
				Token: "JWT_TOKEN",
				Role:  models.RoleTechnician,
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &MessageResponse{
				Message: "Invalid request body.",
			},
		},
		{
			name: "unknown email or wrong password",
			inputBody: LoginRequest{
				Email:    "wrong@oralvis.com",
				Password: "wrongpass",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wrong@oralvis.com", "wrongpass").
					Return("", models.Role(""), services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &MessageResponse{
				Message: "Invalid email or password.",
			},
		},
		{
			name: "internal error",
			inputBody: LoginRequest{
				Email:    "tech@oralvis.com",
				Password: "password123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "tech@oralvis.com", "password123").
					Return("", models.Role(""), errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &MessageResponse{
				Message: "Internal server error.",
			},
		},
	}

	handler := NewLoginHandler(mockSvc, time.Hour)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var body bytes.Buffer
			switch v := tt.inputBody.(type) {
			case string:
				body.WriteString(v)
			default:
				assert.NoError(t, json.NewEncoder(&body).Encode(v))
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", &body)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			switch want := tt.expectedBody.(type) {
			case *LoginResponse:
				var got LoginResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *want, got)
			case *MessageResponse:
				var got MessageResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, *want, got)
			}
		})
	}
}

func TestLoginHandler_SetsSessionCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "dentist@oralvis.com", "password123").
		Return("JWT_TOKEN", models.RoleDentist, nil)

	handler := NewLoginHandler(mockSvc, time.Hour)

	var body bytes.Buffer
	assert.NoError(t, json.NewEncoder(&body).Encode(LoginRequest{
		Email:    "dentist@oralvis.com",
		Password: "password123",
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/login", &body)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == jwt.CookieName {
			session = c
		}
	}
	assert.NotNil(t, session)
	assert.Equal(t, "JWT_TOKEN", session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, int(time.Hour.Seconds()), session.MaxAge)
}
