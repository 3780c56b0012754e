package repositories

import (
	"context"
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// AttendanceRepository define a interface para eventos de ponto
type AttendanceRepository interface {
	Create(ctx context.Context, event *entities.AttendanceEvent) error
	List(ctx context.Context, filters AttendanceFilters) ([]*entities.AttendanceEvent, error)
}

// AttendanceFilters delimita o relatório de ponto
type AttendanceFilters struct {
	Start  time.Time
	End    time.Time
	UserID *string
}

// LeaveRequestRepository define a interface para solicitações de ausência
type LeaveRequestRepository interface {
	Create(ctx context.Context, req *entities.LeaveRequest) error
	FindByID(ctx context.Context, id string) (*entities.LeaveRequest, error)
	Update(ctx context.Context, req *entities.LeaveRequest) error
	ListByUser(ctx context.Context, userID string) ([]*entities.LeaveRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.LeaveRequest, error)
}

// CorrectionRepository define a interface para correções de ponto
type CorrectionRepository interface {
	Create(ctx context.Context, corr *entities.AttendanceCorrection) error
	FindByID(ctx context.Context, id string) (*entities.AttendanceCorrection, error)
	Update(ctx context.Context, corr *entities.AttendanceCorrection) error
	ListByUser(ctx context.Context, userID string) ([]*entities.AttendanceCorrection, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.AttendanceCorrection, error)
}
