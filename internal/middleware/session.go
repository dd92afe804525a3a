package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/auth"
)

const UserIDKey = "user_id"

// Session resolves an anonymous user id from a Bearer session token when
// one is presented. Requests without a token pass through untouched; the
// handlers mint a session on demand. An invalid token is treated like a
// missing one, the client just gets a fresh identity.
func Session(sessions *auth.SessionService, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, err := sessions.ValidateToken(parts[1])
		if err != nil {
			logger.WithError(err).Debug("Ignoring invalid session token")
			c.Next()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// SessionUserID returns the user id resolved by Session, if any.
func SessionUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
