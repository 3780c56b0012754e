package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
)

// TicketRepository define a interface para persistência de tickets
type TicketRepository interface {
	Create(ctx context.Context, ticket *entities.Ticket) error
	// FindByID retorna o ticket mesmo deletado; a decisão de visibilidade
	// (403 vs 404) pertence ao serviço.
	FindByID(ctx context.Context, id string) (*entities.Ticket, error)
	Update(ctx context.Context, ticket *entities.Ticket) error
	List(ctx context.Context, filters TicketFilters) ([]*entities.Ticket, error)
	// CountByStatusPriority agrega contagens para o relatório resumido
	CountByStatusPriority(ctx context.Context) ([]TicketSummaryRow, error)
}

// TicketFilters contém filtros para listagem de tickets.
// Scope carrega o predicado de visibilidade resolvido para o requisitante;
// os filtros restantes vêm da query string.
type TicketFilters struct {
	Scope permissions.Scope

	AssigneeIDs []string
	Status      *entities.TicketStatus
	Priority    *entities.TicketPriority
	Tags        []string

	// OnlyDeleted inverte a regra de soft delete para a listagem
	// dedicada de tickets deletados (tickets.viewDeleted).
	OnlyDeleted bool
}

// TicketSummaryRow é uma linha do relatório status x prioridade
type TicketSummaryRow struct {
	Status   string
	Priority string
	Deleted  bool
	Count    int64
}
