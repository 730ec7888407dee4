package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Impersonation tokens carry the acting admin's id so
// the override is explicit and auditable rather than ambient state.
const (
	PurposeSession     = "session"
	PurposeMagicLink   = "magic_link"
	PurposeImpersonate = "impersonate"
)

// Claims represents the JWT claims for ScribeCloud tokens.
type Claims struct {
	UserID  int    `json:"user_id"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	AdminID int    `json:"admin_id,omitempty"` // set only for impersonation tokens
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT with the given claims.
func GenerateToken(secret string, userID int, email, purpose string, expiry time.Duration) (string, error) {
	claims := Claims{
		UserID:  userID,
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateImpersonationToken creates a short-lived token that lets
// adminID act as userID. Validated per request like any other token.
func GenerateImpersonationToken(secret string, adminID, userID int, expiry time.Duration) (string, error) {
	claims := Claims{
		UserID:  userID,
		AdminID: adminID,
		Purpose: PurposeImpersonate,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a JWT, returning the claims.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
