package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/auth"
)

type authFixture struct {
	svc      *AuthService
	userRepo *memUserRepo
	roleRepo *memRoleRepo
	mailer   *memMailer
}

func newAuthFixture(users ...*entities.User) *authFixture {
	f := &authFixture{
		userRepo: newMemUserRepo(users...),
		roleRepo: newMemRoleRepo(),
		mailer:   &memMailer{},
	}
	f.svc = NewAuthService(f.userRepo, newAccessService(f.roleRepo, f.userRepo),
		stubTokens{}, f.mailer, nopLogger{}, "https://app.example.com")
	return f
}

func userWithPassword(t *testing.T, id, emailAddr, role, password string) *entities.User {
	t.Helper()
	user := testUser(id, emailAddr, role)
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user.PasswordHash = hash
	return user
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("autentica e emite credencial com mapa efetivo", func(t *testing.T) {
		f := newAuthFixture(userWithPassword(t, "usr-1", "maria@example.com", "Agent", "senha-correta"))
		f.roleRepo.roles["Agent"] = &entities.Role{
			ID: "role-1", Name: "Agent",
			Permissions: map[string]bool{"tickets.create": true},
		}

		session, err := f.svc.Login(ctx, "maria@example.com", "senha-correta")
		require.NoError(t, err)
		assert.Equal(t, "tok-usr-1", session.Token)
		assert.True(t, session.Permissions["tickets.create"])
	})

	t.Run("senha errada e email inexistente produzem o mesmo erro", func(t *testing.T) {
		f := newAuthFixture(userWithPassword(t, "usr-1", "maria@example.com", "User", "senha-correta"))

		_, errWrong := f.svc.Login(ctx, "maria@example.com", "senha-errada")
		_, errGhost := f.svc.Login(ctx, "ghost@example.com", "qualquer")
		assert.ErrorIs(t, errWrong, errors.ErrInvalidCredentials)
		assert.ErrorIs(t, errGhost, errors.ErrInvalidCredentials)
	})
}

func TestAuthServiceChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("troca a senha e libera o lock de primeira troca", func(t *testing.T) {
		user := userWithPassword(t, "usr-1", "maria@example.com", "User", "senha-antiga")
		user.MustChangePassword = true
		f := newAuthFixture(user)

		session, err := f.svc.ChangePassword(ctx, "usr-1", "senha-antiga", "senha-nova-forte")
		require.NoError(t, err)
		assert.False(t, session.User.MustChangePassword)
		assert.True(t, auth.CheckPassword(session.User.PasswordHash, "senha-nova-forte"))
	})

	t.Run("senha atual errada é rejeitada", func(t *testing.T) {
		f := newAuthFixture(userWithPassword(t, "usr-1", "maria@example.com", "User", "senha-antiga"))

		_, err := f.svc.ChangePassword(ctx, "usr-1", "senha-errada", "senha-nova-forte")
		assert.ErrorIs(t, err, errors.ErrWrongPassword)
	})

	t.Run("senha nova curta é rejeitada antes de qualquer leitura", func(t *testing.T) {
		f := newAuthFixture()

		_, err := f.svc.ChangePassword(ctx, "usr-1", "senha-antiga", "curta")
		assert.ErrorIs(t, err, errors.ErrPasswordTooShort)
	})
}

func TestAuthServicePasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("fluxo completo de redefinição consome o token", func(t *testing.T) {
		f := newAuthFixture(userWithPassword(t, "usr-1", "maria@example.com", "User", "senha-antiga"))

		require.NoError(t, f.svc.ForgotPassword(ctx, "maria@example.com"))
		require.Len(t, f.mailer.sent, 1)
		assert.Equal(t, "maria@example.com", f.mailer.sent[0].To)

		// O link do email carrega o token em claro
		html := f.mailer.sent[0].HTML
		marker := "https://app.example.com/reset-password/"
		idx := strings.Index(html, marker)
		require.GreaterOrEqual(t, idx, 0)
		token := html[idx+len(marker):]
		token = token[:strings.IndexAny(token, `"<`)]

		require.NoError(t, f.svc.ResetPassword(ctx, token, "senha-nova-forte"))

		user := f.userRepo.users["usr-1"]
		assert.True(t, auth.CheckPassword(user.PasswordHash, "senha-nova-forte"))
		assert.Empty(t, user.ResetPasswordToken)

		// Token já consumido não funciona de novo
		err := f.svc.ResetPassword(ctx, token, "outra-senha-forte")
		assert.ErrorIs(t, err, errors.ErrInvalidResetToken)
	})

	t.Run("email inexistente não é revelado nem gera envio", func(t *testing.T) {
		f := newAuthFixture()

		require.NoError(t, f.svc.ForgotPassword(ctx, "ghost@example.com"))
		assert.Empty(t, f.mailer.sent)
	})

	t.Run("token desconhecido é rejeitado", func(t *testing.T) {
		f := newAuthFixture()

		err := f.svc.ResetPassword(ctx, "token-invalido", "senha-nova-forte")
		assert.ErrorIs(t, err, errors.ErrInvalidResetToken)
	})

	t.Run("falha no envio do email não propaga", func(t *testing.T) {
		f := newAuthFixture(userWithPassword(t, "usr-1", "maria@example.com", "User", "senha-antiga"))
		f.mailer.err = assert.AnError

		assert.NoError(t, f.svc.ForgotPassword(ctx, "maria@example.com"))
	})
}
