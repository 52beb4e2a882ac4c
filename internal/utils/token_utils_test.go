package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habilafinance/finledger_backend/internal/utils"
)

func TestParseAndValidateJWT_RoundTrip(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", "test-secret", time.Hour, "finledger")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")

	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, "finledger", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", "test-secret", time.Hour, "finledger")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "another-secret")

	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-42", "test-secret", -time.Hour, "finledger")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
