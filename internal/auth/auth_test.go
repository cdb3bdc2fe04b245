package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("test-secret", 42, "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("secret-a", 1, "user", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("secret-b", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsOtherSigningMethods(t *testing.T) {
	// A token signed with a different HMAC variant of the same secret must
	// not validate.
	claims := Claims{UserID: 1, Role: "admin"}
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ParseToken("test-secret", signed)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := CreateToken("test-secret", 1, "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.NoError(t, CheckPassword(hash, "admin123"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}
