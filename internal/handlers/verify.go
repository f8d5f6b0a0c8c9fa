package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oralvis/oralvis-server/internal/middlewares"
	"github.com/oralvis/oralvis-server/internal/models"
)

// VerifyResponse reports the session state of the caller
// swagger:model VerifyResponse
type VerifyResponse struct {
	// Always true for authenticated callers
	LoggedIn bool `json:"loggedIn"`

	// Account role
	// default: Dentist
	Role models.Role `json:"role"`
}

// NewVerifyHandler returns an HTTP handler that reports the verified
// session. It runs behind the auth middleware, so reaching it at all
// means the token checked out.
// @Summary Verify session
// @Description Report whether the presented session token is valid and which role it carries
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.VerifyResponse "Session state"
// @Failure 400 {object} handlers.MessageResponse "Invalid token"
// @Failure 401 {object} handlers.MessageResponse "Missing token"
// @Router /verify [get]
func NewVerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyResponse{
			LoggedIn: true,
			Role:     claims.Role,
		})
	}
}
