package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for anonymous user sessions. The server
// mints a session token when a request arrives without a user id, so the
// same browser keeps its interaction history across requests.
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
