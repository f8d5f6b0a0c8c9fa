package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/oralvis/oralvis-server/internal/logger"
	"github.com/oralvis/oralvis-server/internal/models"
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// so login responses never reveal which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserReader defines read-only operations for accounts.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, accountID int64, role models.Role) (string, error)
}

// AuthService handles credential verification and token issuance.
type AuthService struct {
	reader UserReader
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login authenticates an account by email and password and returns a
// session token scoped to the account's id and role.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, models.Role, error) {
	account, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "err", err)
		return "", "", err
	}
	if account == nil {
		logger.Log.Errorw("account does not exist", "email", email)
		return "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, account.ID, account.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", "", err
	}

	return token, account.Role, nil
}
