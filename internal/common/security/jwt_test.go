package security

import (
	"errors"
	"testing"
	"time"

	"stockroom/internal/platform/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T, ttl time.Duration) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTKey: []byte("test-secret"),
		JWTExp: ttl,
	}
	InitJWT()
}

func parseToken(t *testing.T, tokenString string, secret []byte) (jwt.MapClaims, error) {
	t.Helper()
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	return claims, err
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	initTestJWT(t, time.Hour)

	tokenString, err := GenerateToken("user-123", "alice")
	require.NoError(t, err)

	claims, err := parseToken(t, tokenString, []byte("test-secret"))
	require.NoError(t, err)

	userID, err := GetUserIDFromClaims(claims)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)

	username, err := GetUsernameFromClaims(claims)
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestGenerateToken_Expired(t *testing.T) {
	initTestJWT(t, -time.Minute)

	tokenString, err := GenerateToken("user-123", "alice")
	require.NoError(t, err)

	_, err = parseToken(t, tokenString, []byte("test-secret"))
	require.Error(t, err)
	require.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestGenerateToken_WrongSecret(t *testing.T) {
	initTestJWT(t, time.Hour)

	tokenString, err := GenerateToken("user-123", "alice")
	require.NoError(t, err)

	_, err = parseToken(t, tokenString, []byte("other-secret"))
	require.Error(t, err)
}

func TestParse_Malformed(t *testing.T) {
	initTestJWT(t, time.Hour)

	_, err := parseToken(t, "not.a.jwt", []byte("test-secret"))
	require.Error(t, err)
}

func TestGetClaims_Missing(t *testing.T) {
	_, err := GetUserIDFromClaims(jwt.MapClaims{})
	require.Error(t, err)

	_, err = GetUsernameFromClaims(jwt.MapClaims{"username": 42})
	require.Error(t, err)
}
