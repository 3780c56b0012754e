package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=100"`
	Email       string          `json:"email" binding:"required,email"`
	Password    string          `json:"password" binding:"required,min=8,max=72"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions"`
}

// UpdateUserRoleRequest representa a troca de role de um usuário
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserPermissionsRequest substitui o mapa de overrides do usuário
type UpdateUserPermissionsRequest struct {
	Permissions map[string]bool `json:"permissions" binding:"required"`
}

// UserResponse representa a resposta de um usuário no diretório
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions,omitempty"`
	Deleted     bool            `json:"deleted"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProfileResponse é o payload de /me e das respostas de autenticação:
// o usuário com o mapa efetivo de permissões resolvido na hora
type ProfileResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	Role               string          `json:"role"`
	Permissions        map[string]bool `json:"permissions"`
	MustChangePassword bool            `json:"mustChangePassword"`
}

// ToUserResponse converte uma entidade User para UserResponse.
// O hash de senha e os campos de reset nunca saem daqui.
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email.String(),
		Role:        user.Role,
		Permissions: user.Overrides,
		Deleted:     user.IsDeleted(),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// ToProfileResponse monta o payload de perfil com permissões efetivas
func ToProfileResponse(user *entities.User, permissions map[string]bool) ProfileResponse {
	return ProfileResponse{
		ID:                 user.ID,
		Name:               user.Name,
		Email:              user.Email.String(),
		Role:               user.Role,
		Permissions:        permissions,
		MustChangePassword: user.MustChangePassword,
	}
}
