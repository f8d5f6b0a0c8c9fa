package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/oralvis/oralvis-server/internal/jwt"
	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
	"github.com/oralvis/oralvis-server/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, models.Role, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: tech@oralvis.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: password123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Session token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Account role
	// default: Technician
	Role models.Role `json:"role"`
}

// MessageResponse is the generic JSON message body used across endpoints
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable message
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for login. The session token
// is returned in the body for bearer clients and set as an HttpOnly
// cookie for cookie clients; both transports carry the same token.
// @Summary Log in
// @Description Authenticate by email and password, returning a session token and role
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "Session token and role"
// @Failure 400 {object} handlers.MessageResponse "Invalid request body or credentials"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Invalid request body.",
			})
			return
		}

		token, role, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Invalid email or password.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MessageResponse{
					Message: "Internal server error.",
				})
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			Token: token,
			Role:  role,
		})
	}
}
