package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims represents the claims in a token minted by the external
// identity provider. Identity is fully delegated: this service only
// validates tokens, it never issues them.
type JWTClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// JWTValidator validates bearer tokens against the shared signing secret.
type JWTValidator struct {
	secretKey []byte
	leeway    time.Duration
}

// NewJWTValidator creates a new JWT validator
func NewJWTValidator(secret string, leeway time.Duration) *JWTValidator {
	return &JWTValidator{
		secretKey: []byte(secret),
		leeway:    leeway,
	}
}

// Validate parses and verifies a token string and returns its claims.
func (v *JWTValidator) Validate(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secretKey, nil
	}, jwt.WithLeeway(v.leeway))

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Providers that only set the standard subject still identify the user.
	if claims.UserID == uuid.Nil && claims.Subject != "" {
		if id, err := uuid.Parse(claims.Subject); err == nil {
			claims.UserID = id
		}
	}

	return claims, nil
}
