package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// RoleRepository define a interface do registro de roles.
// FindByName é a leitura quente do resolver: retorna (nil, nil) para
// role inexistente, que o resolver trata como mapa vazio (fail-closed).
type RoleRepository interface {
	Create(ctx context.Context, role *entities.Role) error
	FindByID(ctx context.Context, id string) (*entities.Role, error)
	FindByName(ctx context.Context, name string) (*entities.Role, error)
	Update(ctx context.Context, role *entities.Role) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Role, error)
}
