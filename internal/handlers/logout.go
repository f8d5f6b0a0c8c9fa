package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/oralvis/oralvis-server/internal/jwt"
)

// NewLogoutHandler returns an HTTP handler that clears the session
// cookie. Tokens are stateless, so bearer clients simply discard
// theirs; there is nothing to revoke server-side.
// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Failure 401 {object} handlers.MessageResponse "Missing token"
// @Router /logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Logged out successfully.",
		})
	}
}
