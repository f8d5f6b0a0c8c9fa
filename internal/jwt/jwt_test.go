package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oralvis/oralvis-server/internal/models"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 42, models.RoleTechnician)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.AccountID)
	assert.Equal(t, models.RoleTechnician, claims.Role)
}

func TestJWT_GetClaims_Expired(t *testing.T) {
	j := New("test-secret", -time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 1, models.RoleDentist)
	assert.NoError(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, 1, models.RoleDentist)
	assert.NoError(t, err)

	_, err = New("secret-b", time.Minute).GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetClaims_Malformed(t *testing.T) {
	j := New("test-secret", time.Minute)

	_, err := j.GetClaims(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestJWT_GetClaims_UnknownRole(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, 7, models.Role("Receptionist"))
	assert.NoError(t, err)

	_, err = j.GetClaims(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(r *http.Request)
		wantToken string
		wantErr   bool
	}{
		{
			name:      "bearer header",
			setup:     func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc123") },
			wantToken: "abc123",
		},
		{
			name:      "cookie fallback",
			setup:     func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"}) },
			wantToken: "cookie-token",
		},
		{
			name: "header preferred over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
				r.AddCookie(&http.Cookie{Name: CookieName, Value: "cookie-token"})
			},
			wantToken: "header-token",
		},
		{
			name:    "malformed header",
			setup:   func(r *http.Request) { r.Header.Set("Authorization", "abc123") },
			wantErr: true,
		},
		{
			name:    "no token",
			setup:   func(r *http.Request) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)

			token, err := j.GetTokenFromRequest(ctx, r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
