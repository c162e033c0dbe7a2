package usecase

import (
	"context"
	"errors"

	"citas-unidades/internal/pkg/config"
	"citas-unidades/internal/pkg/jwt"
	"citas-unidades/internal/pkg/secret"

	"github.com/google/uuid"
)

var (
	ErrInvalidSecret   = errors.New("invalid admin secret")
	ErrTokenGeneration = errors.New("token generation failed")
	ErrTokenValidation = errors.New("token validation failed")
)

type LoginResult struct {
	Token     string
	SessionID uuid.UUID
}

// AuthUseCase gates the admin panel behind one shared secret. There are no
// user accounts or roles; a valid secret mints a session token.
type AuthUseCase interface {
	Login(ctx context.Context, secretInput string) (*LoginResult, error)
	ValidateToken(tokenString string) (uuid.UUID, error)
}

type authUseCaseImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthUseCase(cfg config.AdminConfig, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(_ context.Context, secretInput string) (*LoginResult, error) {
	if err := a.verifySecret(secretInput); err != nil {
		return nil, ErrInvalidSecret
	}

	sessionID := uuid.New()
	token, err := a.jwtService.GenerateToken(sessionID)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{Token: token, SessionID: sessionID}, nil
}

func (a *authUseCaseImpl) verifySecret(secretInput string) error {
	if a.cfg.SecretHash != "" {
		return secret.CompareHash(a.cfg.SecretHash, secretInput)
	}
	return secret.ComparePlain(a.cfg.Secret, secretInput)
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, ErrTokenValidation
	}
	return claims.SessionID, nil
}
