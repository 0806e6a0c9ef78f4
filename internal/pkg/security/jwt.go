package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expirySkew treats tokens about to expire as expired
const expirySkew = 30 * time.Second

// ParseClaims 解析 Token 中的 Claims. The signature belongs to the identity
// provider and is checked by the API, so it is not verified here.
func ParseClaims(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, fmt.Errorf("token 解析失败: %w", err)
	}
	return claims, nil
}

// IsExpired reports whether the token is unusable at now. Tokens without an
// exp claim never expire; malformed tokens always do.
func IsExpired(tokenString string, now time.Time) bool {
	claims, err := ParseClaims(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !now.Add(expirySkew).Before(claims.ExpiresAt.Time)
}

// Subject 提取用户标识
func Subject(tokenString string) (string, error) {
	claims, err := ParseClaims(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token 缺少 sub")
	}
	return claims.Subject, nil
}
