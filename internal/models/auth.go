package models

import "github.com/golang-jwt/jwt/v5"

// JWTClaims are the access-token claims this service verifies. Tokens are
// issued by the identity service; this API only validates them.
type JWTClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
