package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens issued by the
// identity provider.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService validates the Bearer tokens the identity provider signs with
// the shared access secret. GenerateAccessToken exists for the provider-side
// contract and for tests; this service never issues tokens in request flow.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for a user id.
	GenerateAccessToken(userID string, ttl time.Duration) (string, error)

	// ValidateToken checks the validity of a token string and returns its
	// claims.
	ValidateToken(tokenString string) (*Claims, error)
}
