package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// CreateRoleRequest representa a requisição para criar um role
type CreateRoleRequest struct {
	Name        string          `json:"name" binding:"required,min=2,max=100"`
	Description string          `json:"description"`
	Permissions map[string]bool `json:"permissions"`
}

// UpdateRoleRequest representa uma atualização parcial de role
type UpdateRoleRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string         `json:"description"`
	Permissions map[string]bool `json:"permissions"`
}

// RoleResponse representa a resposta de um role
type RoleResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Permissions map[string]bool `json:"permissions"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToRoleResponse converte uma entidade Role para RoleResponse
func ToRoleResponse(role *entities.Role) RoleResponse {
	return RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: role.Permissions,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

// ToRoleResponses converte uma lista de roles
func ToRoleResponses(roles []*entities.Role) []RoleResponse {
	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = ToRoleResponse(role)
	}
	return responses
}
