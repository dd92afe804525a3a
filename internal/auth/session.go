package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/apteva/apteva/internal/config"
	"github.com/apteva/apteva/pkg/models"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionService issues and validates the anonymous session tokens that
// carry a stable user id across requests. No accounts, no passwords: the
// first request mints an id and the client keeps presenting the token.
type SessionService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewSessionService(cfg config.AuthConfig) *SessionService {
	return &SessionService{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// NewSession mints a fresh anonymous user id and a signed token for it.
func (s *SessionService) NewSession() (string, string, error) {
	userID := uuid.New().String()
	token, err := s.IssueToken(userID)
	if err != nil {
		return "", "", err
	}
	return userID, token, nil
}

// IssueToken signs a session token for an existing user id.
func (s *SessionService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := models.SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			Issuer:    "apteva",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses a session token and returns the user id it carries.
func (s *SessionService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
