package entities

import (
	"errors"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema.
// Role é uma referência por nome, não uma foreign key: um role apagado
// degrada o usuário para "sem permissões" em vez de quebrar a resolução.
// Overrides só influenciam as chaves que definem explicitamente; chaves
// ausentes caem no valor do role.
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         string
	Overrides    map[string]bool

	// Contas criadas pela administração nascem travadas até a primeira
	// troca de senha.
	MustChangePassword bool

	ResetPasswordToken   string
	ResetPasswordExpires *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft delete
	DeletedBy string
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == permissions.RoleAdmin
}

// IsDeleted verifica se a conta foi encerrada (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete encerra a conta registrando quando e por quem
func (u *User) SoftDelete(actorID string) {
	now := time.Now()
	u.DeletedAt = &now
	u.DeletedBy = actorID
}

// Restore restaura uma conta encerrada
func (u *User) Restore() {
	u.DeletedAt = nil
	u.DeletedBy = ""
}

// ClearPasswordLock libera o usuário após a troca de senha obrigatória
func (u *User) ClearPasswordLock() {
	u.MustChangePassword = false
}

// SetResetToken registra o token de redefinição de senha (já com hash)
func (u *User) SetResetToken(hashed string, expires time.Time) {
	u.ResetPasswordToken = hashed
	u.ResetPasswordExpires = &expires
}

// ClearResetToken descarta o token de redefinição após uso
func (u *User) ClearResetToken() {
	u.ResetPasswordToken = ""
	u.ResetPasswordExpires = nil
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if u.Role == "" {
		return errors.New("role is required")
	}

	return nil
}
