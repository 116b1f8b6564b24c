package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcalderon/inventario-movil/pkg/password"
)

func TestHashVerify_PasswordCorrecto(t *testing.T) {
	salt, err := password.GenerateSalt()
	require.NoError(t, err)

	hash, err := password.Hash("secreto-muy-largo-123", salt)
	require.NoError(t, err)

	assert.True(t, password.Verify("secreto-muy-largo-123", salt, hash))
}

func TestVerify_PasswordIncorrecto(t *testing.T) {
	salt, err := password.GenerateSalt()
	require.NoError(t, err)
	hash, err := password.Hash("secreto-muy-largo-123", salt)
	require.NoError(t, err)

	assert.False(t, password.Verify("otro-password", salt, hash))
}

// El mismo password con salts distintos produce hashes distintos.
func TestHash_SaltDistintoHashDistinto(t *testing.T) {
	s1, err := password.GenerateSalt()
	require.NoError(t, err)
	s2, err := password.GenerateSalt()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)

	h1, err := password.Hash("mismo-password", s1)
	require.NoError(t, err)
	h2, err := password.Hash("mismo-password", s2)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

// Entradas corruptas (no base64) nunca verifican ni entran en pánico.
func TestVerify_EntradasCorruptas(t *testing.T) {
	assert.False(t, password.Verify("x", "no-es-base64!!!", "tampoco!!!"))
}
