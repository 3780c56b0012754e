package services

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// RoleService contém a lógica de negócio do registro de roles
type RoleService struct {
	roleRepo repositories.RoleRepository
	logger   ports.Logger
}

// NewRoleService cria um novo RoleService
func NewRoleService(roleRepo repositories.RoleRepository, logger ports.Logger) *RoleService {
	return &RoleService{roleRepo: roleRepo, logger: logger}
}

// ListRoles lista os roles registrados
func (s *RoleService) ListRoles(ctx context.Context) ([]*entities.Role, error) {
	return s.roleRepo.List(ctx)
}

// CreateRoleInput representa os dados para criar um role
type CreateRoleInput struct {
	Name        string
	Description string
	Permissions map[string]bool
}

// CreateRole registra um novo role com nome único
func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (*entities.Role, error) {
	existing, err := s.roleRepo.FindByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrRoleAlreadyExists
	}

	perms := input.Permissions
	if perms == nil {
		perms = map[string]bool{}
	}

	now := time.Now()
	role := &entities.Role{
		Name:        input.Name,
		Description: input.Description,
		Permissions: perms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := role.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role created", "role", role.Name)
	return role, nil
}

// UpdateRoleInput representa os campos mutáveis de um role
type UpdateRoleInput struct {
	Name        *string
	Description *string
	Permissions map[string]bool
}

// UpdateRole atualiza nome, descrição e/ou o mapa de permissões.
// O mapa, quando presente, substitui o anterior por inteiro.
func (s *RoleService) UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*entities.Role, error) {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.ErrRoleNotFound
	}

	if input.Name != nil {
		role.Name = *input.Name
	}
	if input.Description != nil {
		role.Description = *input.Description
	}
	if input.Permissions != nil {
		role.Permissions = input.Permissions
	}
	if err := role.Validate(); err != nil {
		return nil, invalid(err)
	}

	role.UpdatedAt = time.Now()
	if err := s.roleRepo.Update(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info("role updated", "role", role.Name)
	return role, nil
}

// DeleteRole remove o role do registro. Usuários que ainda apontam para
// o nome removido degradam para "sem permissões" na próxima resolução.
func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	role, err := s.roleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if role == nil {
		return errors.ErrRoleNotFound
	}

	if err := s.roleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Warn("role deleted", "role", role.Name)
	return nil
}
