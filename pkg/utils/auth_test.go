package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	require.NoError(t, ComparePasswords(hash, "secret1"))
	require.Error(t, ComparePasswords(hash, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-signing-secret")

	token, err := CreateToken(42, "member")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "42", claims.Subject)
	require.Equal(t, "member", claims.AccountClass)
}

// Tokens must be verified against the configured secret, not whatever
// the signing key happened to be at process start.
func TestValidateToken_RejectsForeignKey(t *testing.T) {
	InitJWT("test-signing-secret")

	for _, foreignKey := range []string{"", "some-other-secret"} {
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
			AccountClass: "admin",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := forged.SignedString([]byte(foreignKey))
		require.NoError(t, err)

		_, err = ValidateToken(signed)
		require.Error(t, err)
	}
}

func TestInitJWT_InstallsConfiguredSecret(t *testing.T) {
	InitJWT("first-secret")
	token, err := CreateToken(7, "member")
	require.NoError(t, err)

	// Rotating the secret invalidates previously issued tokens.
	InitJWT("second-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)

	fresh, err := CreateToken(7, "member")
	require.NoError(t, err)
	_, err = ValidateToken(fresh)
	require.NoError(t, err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	InitJWT("test-signing-secret")

	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}
