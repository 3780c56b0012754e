package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
)

// Role é um template nomeado de permissões (capability -> bool).
// O vocabulário de chaves é aberto: a administração cria novas chaves em
// runtime. O nome "Admin" é reservado e nunca precisa existir no registro;
// o resolver trata Admin antes de qualquer lookup.
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions map[string]bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Role
func (r *Role) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("role name is required")
	}
	if name == permissions.RoleAdmin {
		return errors.New("role name Admin is reserved")
	}
	return nil
}

// Grants responde se o template concede a capability.
// Só informa o valor base do role; o merge com overrides por usuário
// acontece em permissions.Resolve.
func (r *Role) Grants(key string) bool {
	return r.Permissions[key]
}
