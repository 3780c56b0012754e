package services

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// ActivityService registra e consulta o histórico de auditoria de tickets
type ActivityService struct {
	activityRepo repositories.ActivityLogRepository
	sink         ports.EventSink
	logger       ports.Logger
}

// NewActivityService cria um novo ActivityService.
// sink pode ser nil quando não há distribuição em tempo real.
func NewActivityService(
	activityRepo repositories.ActivityLogRepository,
	sink ports.EventSink,
	logger ports.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		sink:         sink,
		logger:       logger,
	}
}

// Record grava uma entrada de auditoria. Fire-and-forget: falha é
// logada e nunca propaga para a operação que a originou.
func (s *ActivityService) Record(ctx context.Context, action, userID, ticketID, details string) {
	entry := &entities.ActivityLog{
		Action:    action,
		UserID:    userID,
		TicketID:  ticketID,
		Details:   details,
		Timestamp: time.Now(),
	}

	if err := s.activityRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record activity", "action", action, "ticket_id", ticketID, "error", err)
		return
	}

	if s.sink != nil {
		s.sink.Publish(*entry)
	}
}

// List retorna o histórico, opcionalmente filtrado por ticket,
// do mais recente para o mais antigo
func (s *ActivityService) List(ctx context.Context, ticketID *string) ([]*entities.ActivityLog, error) {
	return s.activityRepo.List(ctx, ticketID)
}
