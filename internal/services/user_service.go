package services

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/errors"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/valueobjects"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/auth"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	access   *AccessService
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
	access *AccessService,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		access:   access,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	Overrides map[string]bool
}

// CreateUser cria um novo usuário administrado. A conta nasce com
// mustChangePassword ligado: a senha recebida é temporária.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	role := input.Role
	if role == "" {
		role = "User"
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		Email:              email,
		Name:               input.Name,
		PasswordHash:       hash,
		Role:               role,
		Overrides:          input.Overrides,
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := user.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetProfile retorna o usuário com o mapa efetivo de permissões,
// resolvido na hora (o payload de /me nunca usa valores congelados).
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entities.User, map[string]bool, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	set, err := s.access.ResolveSet(ctx, user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}
	return user, set.Values(), nil
}

// ListUsers lista o diretório de usuários
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateRole troca o role do usuário. O nome precisa existir no
// registro, exceto "Admin", que nunca tem registro.
func (s *UserService) UpdateRole(ctx context.Context, userID, roleName string) (*entities.User, error) {
	if roleName != permissions.RoleAdmin {
		role, err := s.roleRepo.FindByName(ctx, roleName)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, errors.ErrRoleNotDefined
		}
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = roleName
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user role updated", "user_id", user.ID, "role", roleName)
	return user, nil
}

// UpdateOverrides substitui o mapa de overrides do usuário por inteiro
func (s *UserService) UpdateOverrides(ctx context.Context, userID string, overrides map[string]bool) (*entities.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Overrides = overrides
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user overrides updated", "user_id", user.ID)
	return user, nil
}

// CloseAccount encerra a conta (soft delete). Além da capability na
// rota, a decisão final exige Admin.
func (s *UserService) CloseAccount(ctx context.Context, actor Actor, userID string) error {
	if actor.Role != permissions.RoleAdmin {
		return errors.ErrForbidden
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	user.SoftDelete(actor.ID)
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("account closed", "user_id", user.ID, "closed_by", actor.ID)
	return nil
}
