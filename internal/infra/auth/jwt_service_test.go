package auth

import (
	"testing"
	"time"

	"pricewatch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestService(t, "test-secret")

	token, err := svc.GenerateAccessToken("user-123", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestService(t, "secret-a")
	verifier := newTestService(t, "secret-b")

	token, err := issuer.GenerateAccessToken("user-123", time.Minute)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestService(t, "test-secret")

	token, err := svc.GenerateAccessToken("user-123", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := newTestService(t, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
