package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// ActivityLogRepository implementa repositories.ActivityLogRepository
type ActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository cria um novo ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) repositories.ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

func (r *ActivityLogRepository) Create(ctx context.Context, log *entities.ActivityLog) error {
	model := &ActivityLogModel{
		ID:        log.ID,
		Action:    log.Action,
		UserID:    log.UserID,
		TicketID:  log.TicketID,
		Details:   log.Details,
		Timestamp: log.Timestamp.Unix(),
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	log.ID = model.ID
	return nil
}

func (r *ActivityLogRepository) List(ctx context.Context, ticketID *string) ([]*entities.ActivityLog, error) {
	var models []*ActivityLogModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&ActivityLogModel{})
	if ticketID != nil {
		query = query.Where("ticket_id = ?", *ticketID)
	}

	if err := query.Order("timestamp DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	logs := make([]*entities.ActivityLog, 0, len(models))
	for _, model := range models {
		logs = append(logs, &entities.ActivityLog{
			ID:        model.ID,
			Action:    model.Action,
			UserID:    model.UserID,
			TicketID:  model.TicketID,
			Details:   model.Details,
			Timestamp: time.Unix(model.Timestamp, 0),
		})
	}
	return logs, nil
}
