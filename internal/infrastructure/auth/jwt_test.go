package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
)

func TestJWTService(t *testing.T) {
	svc, err := NewJWTService("segredo-de-teste", 7*24*time.Hour)
	require.NoError(t, err)

	claims := ports.TokenClaims{
		UserID:             "usr-1",
		Role:               "Agent",
		Name:               "Maria",
		Email:              "maria@example.com",
		MustChangePassword: true,
	}

	t.Run("emite e valida credencial com snapshot completo", func(t *testing.T) {
		token, err := svc.Issue(claims)
		require.NoError(t, err)

		got, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, claims, *got)
	})

	t.Run("rejeita token vazio", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ports.ErrTokenInvalid)
	})

	t.Run("rejeita token adulterado", func(t *testing.T) {
		token, err := svc.Issue(claims)
		require.NoError(t, err)

		_, err = svc.Verify(token + "x")
		assert.ErrorIs(t, err, ports.ErrTokenInvalid)
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		other, err := NewJWTService("outro-segredo", time.Hour)
		require.NoError(t, err)

		token, err := other.Issue(claims)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ports.ErrTokenInvalid)
	})

	t.Run("rejeita credencial expirada", func(t *testing.T) {
		short, err := NewJWTService("segredo-de-teste", time.Nanosecond)
		require.NoError(t, err)

		token, err := short.Issue(claims)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ports.ErrTokenInvalid)
	})

	t.Run("exige segredo configurado", func(t *testing.T) {
		_, err := NewJWTService("  ", time.Hour)
		assert.Error(t, err)
	})

	t.Run("exige identidade ao emitir", func(t *testing.T) {
		_, err := svc.Issue(ports.TokenClaims{})
		assert.Error(t, err)
	})
}

func TestPasswordHashing(t *testing.T) {
	t.Run("hash e verificação de senha", func(t *testing.T) {
		hash, err := HashPassword("senha-forte-123")
		require.NoError(t, err)

		assert.True(t, CheckPassword(hash, "senha-forte-123"))
		assert.False(t, CheckPassword(hash, "senha-errada"))
	})

	t.Run("token de redefinição: claro difere do hash e o hash é estável", func(t *testing.T) {
		token, hashed, err := NewResetToken()
		require.NoError(t, err)

		assert.NotEqual(t, token, hashed)
		assert.Equal(t, hashed, HashResetToken(token))
	})
}
