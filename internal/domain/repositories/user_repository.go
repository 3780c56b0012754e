package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByResetToken(ctx context.Context, hashedToken string) (*entities.User, error)
	// FindOverrides lê somente o mapa de overrides, a leitura quente do
	// resolver de permissões.
	FindOverrides(ctx context.Context, id string) (map[string]bool, error)
	ExistByIDs(ctx context.Context, ids []string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role           *string
	IncludeDeleted bool
	Page           int // Página (começa em 1)
	PageSize       int // Itens por página (default: 20, max: 100)
}
