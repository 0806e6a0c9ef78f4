package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims the subset of identity provider access token claims the client reads
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
