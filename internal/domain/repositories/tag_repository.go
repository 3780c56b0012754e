package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// TagRepository define a interface do catálogo de tags
type TagRepository interface {
	Create(ctx context.Context, tag *entities.Tag) error
	FindByID(ctx context.Context, id string) (*entities.Tag, error)
	FindByName(ctx context.Context, name string) (*entities.Tag, error)
	Update(ctx context.Context, tag *entities.Tag) error
	// Delete remove fisicamente; tags não participam de soft delete
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]*entities.Tag, error)
}
