package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste", 60)

	token, err := manager.Sign(TokenUser{
		ID:   "64e5cbd3f7a14a0b8c9d1e2f",
		Name: "Maria da Silva",
		Role: "Admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64e5cbd3f7a14a0b8c9d1e2f", user.ID)
	assert.Equal(t, "Maria da Silva", user.Name)
	assert.Equal(t, "Admin", user.Role)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste", -60)

	token, err := manager.Sign(TokenUser{ID: "1", Name: "Maria", Role: "Cliente"})
	require.NoError(t, err)

	_, err = manager.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("segredo-a", 60)
	verifier := NewJWTManager("segredo-b", 60)

	token, err := issuer.Sign(TokenUser{ID: "1", Name: "Maria", Role: "Cliente"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste", 60)

	_, err := manager.Verify("nem.um.token")
	assert.Error(t, err)
}
