package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// Actor é a identidade extraída da credencial, repassada pelos handlers
// aos serviços para decisões de autorização e auditoria.
type Actor struct {
	ID   string
	Name string
	Role string
}

// AccessService resolve o conjunto efetivo de capabilities de uma
// identidade a cada requisição. O nome do role vem congelado na
// credencial; os mapas de permissão são lidos do armazenamento no
// momento da decisão.
type AccessService struct {
	roleRepo repositories.RoleRepository
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewAccessService cria um novo AccessService
func NewAccessService(
	roleRepo repositories.RoleRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *AccessService {
	return &AccessService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ResolveSet computa o conjunto efetivo para o usuário.
// Admin retorna o sentinela sem tocar o armazenamento. Para os demais,
// o mapa do role e o mapa de overrides são lidos em paralelo; role
// inexistente degrada para mapa vazio (overrides ainda se aplicam).
// Falha de armazenamento propaga como erro: o gate responde 500, nunca
// um 403 enganoso.
func (s *AccessService) ResolveSet(ctx context.Context, userID, roleName string) (permissions.Set, error) {
	if roleName == permissions.RoleAdmin {
		return permissions.AdminSet(), nil
	}

	var (
		rolePerms map[string]bool
		overrides map[string]bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		role, err := s.roleRepo.FindByName(gctx, roleName)
		if err != nil {
			return err
		}
		if role != nil {
			rolePerms = role.Permissions
		}
		return nil
	})
	g.Go(func() error {
		ov, err := s.userRepo.FindOverrides(gctx, userID)
		if err != nil {
			return err
		}
		overrides = ov
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("permission resolution failed", "user_id", userID, "role", roleName, "error", err)
		return permissions.Set{}, err
	}

	return permissions.Resolve(roleName, rolePerms, overrides), nil
}

// ResolveScope computa o escopo de visibilidade do usuário para
// listagens e leituras unitárias.
func (s *AccessService) ResolveScope(ctx context.Context, actor Actor, viewAllKey string) (permissions.Scope, error) {
	set, err := s.ResolveSet(ctx, actor.ID, actor.Role)
	if err != nil {
		return permissions.Scope{}, err
	}
	return permissions.NewScope(actor.ID, set, viewAllKey), nil
}
