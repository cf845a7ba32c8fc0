// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("0.0.1001", "member", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", claims.WalletAddress)
	assert.Equal(t, "member", claims.UserType)
	assert.Equal(t, "split-chain", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	SetJWTSecret("test-secret")
	token, err := GenerateJWT("0.0.1001", "member", 1)
	require.NoError(t, err)

	SetJWTSecret("another-secret")
	defer SetJWTSecret("test-secret")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpired(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT("0.0.1001", "member", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken("0.0.1001", 1)
	require.NoError(t, err)

	subject, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", subject)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateRefreshToken("0.0.1001", 1)
	require.NoError(t, err)

	// A refresh token carries no wallet claim; validating it as an access
	// token yields empty identity fields.
	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Empty(t, claims.WalletAddress)
}
