package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/auth"
)

const (
	resetTokenTTL     = time.Hour
	minPasswordLength = 8
)

// Session é o resultado de uma autenticação bem-sucedida: o usuário, a
// credencial emitida e o mapa efetivo de permissões para o payload.
type Session struct {
	User        *entities.User
	Token       string
	Permissions map[string]bool
}

// AuthService contém a lógica de autenticação e gestão de senhas
type AuthService struct {
	userRepo  repositories.UserRepository
	access    *AccessService
	tokens    ports.TokenService
	mailer    ports.Mailer
	logger    ports.Logger
	clientURL string
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	access *AccessService,
	tokens ports.TokenService,
	mailer ports.Mailer,
	logger ports.Logger,
	clientURL string,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		access:    access,
		tokens:    tokens,
		mailer:    mailer,
		logger:    logger,
		clientURL: clientURL,
	}
}

// Login autentica por email e senha e emite a credencial.
// Usuário inexistente e senha errada produzem o mesmo erro, sem
// distinguir qual dos dois falhou.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errors.ErrInvalidCredentials
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return session, nil
}

// ChangePassword troca a senha verificando a atual, limpa o lock de
// primeira troca e reemite a credencial com o novo snapshot.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (*Session, error) {
	if len(newPassword) < minPasswordLength {
		return nil, errors.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return nil, errors.ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash
	user.ClearPasswordLock()
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	session, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("password changed", "user_id", user.ID)
	return session, nil
}

// ForgotPassword inicia a redefinição de senha. A resposta é opaca:
// email inexistente não é revelado ao chamador. O envio do email é
// fire-and-forget; falha é logada, nunca propagada.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, hashed, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	user.SetResetToken(hashed, time.Now().Add(resetTokenTTL))
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.clientURL, token)
	mail := ports.Mail{
		To:      user.Email.String(),
		Subject: "Reset your password",
		HTML: fmt.Sprintf(`<p>Hello %s,</p>
<p>You requested a password reset. Click the link below to set a new password. This link expires in 1 hour.</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, user.Name, resetLink, resetLink),
	}
	if err := s.mailer.Send(ctx, mail); err != nil {
		s.logger.Error("failed to send reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

// ResetPassword consome o token de redefinição e grava a nova senha
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.ErrPasswordTooShort
	}

	user, err := s.userRepo.FindByResetToken(ctx, auth.HashResetToken(token))
	if err != nil {
		return err
	}
	if user == nil {
		return errors.ErrInvalidResetToken
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.ClearResetToken()
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("password reset completed", "user_id", user.ID)
	return nil
}

func (s *AuthService) openSession(ctx context.Context, user *entities.User) (*Session, error) {
	set, err := s.access.ResolveSet(ctx, user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(ports.TokenClaims{
		UserID:             user.ID,
		Role:               user.Role,
		Name:               user.Name,
		Email:              user.Email.String(),
		MustChangePassword: user.MustChangePassword,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		User:        user,
		Token:       token,
		Permissions: set.Values(),
	}, nil
}
