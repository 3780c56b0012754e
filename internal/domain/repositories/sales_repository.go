package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
)

// SalesTicketRepository define a interface para persistência de sales tickets
type SalesTicketRepository interface {
	Create(ctx context.Context, ticket *entities.SalesTicket) error
	FindByID(ctx context.Context, id string) (*entities.SalesTicket, error)
	Update(ctx context.Context, ticket *entities.SalesTicket) error
	List(ctx context.Context, filters SalesFilters) ([]*entities.SalesTicket, error)
}

// SalesFilters contém filtros para listagem de sales tickets
type SalesFilters struct {
	Scope  permissions.Scope
	Status *entities.TicketStatus
}
