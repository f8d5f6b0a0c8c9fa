package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oralvis/oralvis-server/internal/models"
)

// CookieName is the session cookie set on login and cleared on logout.
// The Authorization header takes precedence when both are present.
const CookieName = "token"

// Claims carries the verified identity extracted from a session token.
type Claims struct {
	AccountID int64       // Account primary key
	Role      models.Role // Account role at issuance time
}

// JWT issues and verifies session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token lifetime
}

// New creates a new JWT instance.
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a signed token scoped to the given account and role.
func (j *JWT) Generate(ctx context.Context, accountID int64, role models.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"uid":  strconv.FormatInt(accountID, 10),
		"role": string(role),
		"exp":  now.Add(j.Exp).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses the token string and returns its claims if the token
// verifies. Expired, malformed or foreign-signed tokens all fail here.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	uidStr, ok := claims["uid"].(string)
	if !ok {
		return nil, errors.New("uid not found in token")
	}
	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		return nil, errors.New("invalid uid format")
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("role not found in token")
	}
	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, errors.New("unknown role in token")
	}

	return &Claims{AccountID: uid, Role: role}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization
// header, falling back to the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", errors.New("invalid authorization header format")
		}
		return parts[1], nil
	}

	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}

	return "", errors.New("no token provided")
}
