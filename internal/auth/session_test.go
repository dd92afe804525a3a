package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apteva/apteva/internal/config"
)

func testService() *SessionService {
	return NewSessionService(config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestSessionService_RoundTrip(t *testing.T) {
	s := testService()

	userID, token, err := s.NewSession()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = uuid.Parse(userID)
	require.NoError(t, err, "session ids are uuids")

	got, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestSessionService_Validation(t *testing.T) {
	s := testService()

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := s.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := NewSessionService(config.AuthConfig{JWTSecret: "other", TokenTTL: time.Hour})
		token, err := other.IssueToken("user-1")
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		expired := NewSessionService(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: -time.Minute})
		token, err := expired.IssueToken("user-1")
		require.NoError(t, err)

		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
