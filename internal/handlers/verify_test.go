package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/oralvis/oralvis-server/internal/jwt"
	"github.com/oralvis/oralvis-server/internal/middlewares"
	"github.com/oralvis/oralvis-server/internal/models"
)

// serveBehindAuth runs a handler behind the auth middleware with a
// tokener that accepts any token and returns the given claims.
func serveBehindAuth(t *testing.T, claims *jwt.Claims, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	tokener := middlewares.NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
	tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)

	rr := httptest.NewRecorder()
	middlewares.AuthMiddleware(tokener)(handler).ServeHTTP(rr, req)
	return rr
}

func TestVerifyHandler(t *testing.T) {
	claims := &jwt.Claims{AccountID: 2, Role: models.RoleDentist}

	req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
	rr := serveBehindAuth(t, claims, NewVerifyHandler(), req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp VerifyResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.LoggedIn)
	assert.Equal(t, models.RoleDentist, resp.Role)
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rr := httptest.NewRecorder()

	NewLogoutHandler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var session *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == jwt.CookieName {
			session = c
		}
	}
	assert.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.Negative(t, session.MaxAge)
}
