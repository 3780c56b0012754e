package repositories

import (
	"context"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// ActivityLogRepository define a interface do histórico de auditoria
type ActivityLogRepository interface {
	Create(ctx context.Context, log *entities.ActivityLog) error
	List(ctx context.Context, ticketID *string) ([]*entities.ActivityLog, error)
}
