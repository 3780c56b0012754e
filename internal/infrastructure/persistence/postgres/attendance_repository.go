package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/repositories"
)

// AttendanceRepository implementa repositories.AttendanceRepository
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository cria um novo AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) repositories.AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, event *entities.AttendanceEvent) error {
	model := &AttendanceModel{
		ID:        event.ID,
		UserID:    event.UserID,
		Action:    string(event.Action),
		Timestamp: event.Timestamp.Unix(),
		Note:      event.Note,
	}

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	event.ID = model.ID
	return nil
}

func (r *AttendanceRepository) List(ctx context.Context, filters repositories.AttendanceFilters) ([]*entities.AttendanceEvent, error) {
	var models []*AttendanceModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&AttendanceModel{})

	if !filters.Start.IsZero() {
		query = query.Where("timestamp >= ?", filters.Start.Unix())
	}
	if !filters.End.IsZero() {
		query = query.Where("timestamp <= ?", filters.End.Unix())
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}

	if err := query.Order("timestamp ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	events := make([]*entities.AttendanceEvent, 0, len(models))
	for _, model := range models {
		events = append(events, &entities.AttendanceEvent{
			ID:        model.ID,
			UserID:    model.UserID,
			Action:    entities.AttendanceAction(model.Action),
			Timestamp: time.Unix(model.Timestamp, 0),
			Note:      model.Note,
		})
	}
	return events, nil
}

// LeaveRequestRepository implementa repositories.LeaveRequestRepository
type LeaveRequestRepository struct {
	db *gorm.DB
}

// NewLeaveRequestRepository cria um novo LeaveRequestRepository
func NewLeaveRequestRepository(db *gorm.DB) repositories.LeaveRequestRepository {
	return &LeaveRequestRepository{db: db}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, req *entities.LeaveRequest) error {
	model := r.toModel(req)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	req.ID = model.ID
	return nil
}

func (r *LeaveRequestRepository) FindByID(ctx context.Context, id string) (*entities.LeaveRequest, error) {
	var model LeaveRequestModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *LeaveRequestRepository) Update(ctx context.Context, req *entities.LeaveRequest) error {
	model := r.toModel(req)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *LeaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]*entities.LeaveRequest, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *LeaveRequestRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.LeaveRequest, error) {
	return r.list(ctx, "status = ?", string(status))
}

func (r *LeaveRequestRepository) list(ctx context.Context, cond string, arg any) ([]*entities.LeaveRequest, error) {
	var models []*LeaveRequestModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(cond, arg).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	reqs := make([]*entities.LeaveRequest, 0, len(models))
	for _, model := range models {
		reqs = append(reqs, r.toEntity(model))
	}
	return reqs, nil
}

func (r *LeaveRequestRepository) toModel(req *entities.LeaveRequest) *LeaveRequestModel {
	var approverID *string
	if req.ApproverID != "" {
		approverID = &req.ApproverID
	}

	return &LeaveRequestModel{
		ID:           req.ID,
		UserID:       req.UserID,
		StartDate:    req.StartDate.Unix(),
		EndDate:      req.EndDate.Unix(),
		Reason:       req.Reason,
		Status:       string(req.Status),
		ApproverID:   approverID,
		DecisionNote: req.DecisionNote,
		CreatedAt:    req.CreatedAt.Unix(),
		UpdatedAt:    req.UpdatedAt.Unix(),
	}
}

func (r *LeaveRequestRepository) toEntity(model *LeaveRequestModel) *entities.LeaveRequest {
	var approverID string
	if model.ApproverID != nil {
		approverID = *model.ApproverID
	}

	return &entities.LeaveRequest{
		ID:           model.ID,
		UserID:       model.UserID,
		StartDate:    time.Unix(model.StartDate, 0),
		EndDate:      time.Unix(model.EndDate, 0),
		Reason:       model.Reason,
		Status:       entities.RequestStatus(model.Status),
		ApproverID:   approverID,
		DecisionNote: model.DecisionNote,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}

// CorrectionRepository implementa repositories.CorrectionRepository
type CorrectionRepository struct {
	db *gorm.DB
}

// NewCorrectionRepository cria um novo CorrectionRepository
func NewCorrectionRepository(db *gorm.DB) repositories.CorrectionRepository {
	return &CorrectionRepository{db: db}
}

func (r *CorrectionRepository) Create(ctx context.Context, corr *entities.AttendanceCorrection) error {
	model := r.toModel(corr)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	corr.ID = model.ID
	return nil
}

func (r *CorrectionRepository) FindByID(ctx context.Context, id string) (*entities.AttendanceCorrection, error) {
	var model CorrectionModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CorrectionRepository) Update(ctx context.Context, corr *entities.AttendanceCorrection) error {
	model := r.toModel(corr)

	db := dbFromContext(ctx, r.db)
	return db.Save(model).Error
}

func (r *CorrectionRepository) ListByUser(ctx context.Context, userID string) ([]*entities.AttendanceCorrection, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *CorrectionRepository) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]*entities.AttendanceCorrection, error) {
	return r.list(ctx, "status = ?", string(status))
}

func (r *CorrectionRepository) list(ctx context.Context, cond string, arg any) ([]*entities.AttendanceCorrection, error) {
	var models []*CorrectionModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(cond, arg).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	corrs := make([]*entities.AttendanceCorrection, 0, len(models))
	for _, model := range models {
		corrs = append(corrs, r.toEntity(model))
	}
	return corrs, nil
}

func (r *CorrectionRepository) toModel(corr *entities.AttendanceCorrection) *CorrectionModel {
	var approverID *string
	if corr.ApproverID != "" {
		approverID = &corr.ApproverID
	}

	var clockIn *int64
	if corr.NewClockIn != nil {
		ts := corr.NewClockIn.Unix()
		clockIn = &ts
	}

	var clockOut *int64
	if corr.NewClockOut != nil {
		ts := corr.NewClockOut.Unix()
		clockOut = &ts
	}

	return &CorrectionModel{
		ID:           corr.ID,
		UserID:       corr.UserID,
		Date:         corr.Date.Unix(),
		NewClockIn:   clockIn,
		NewClockOut:  clockOut,
		Reason:       corr.Reason,
		Status:       string(corr.Status),
		ApproverID:   approverID,
		DecisionNote: corr.DecisionNote,
		CreatedAt:    corr.CreatedAt.Unix(),
		UpdatedAt:    corr.UpdatedAt.Unix(),
	}
}

func (r *CorrectionRepository) toEntity(model *CorrectionModel) *entities.AttendanceCorrection {
	var approverID string
	if model.ApproverID != nil {
		approverID = *model.ApproverID
	}

	var clockIn *time.Time
	if model.NewClockIn != nil {
		ts := time.Unix(*model.NewClockIn, 0)
		clockIn = &ts
	}

	var clockOut *time.Time
	if model.NewClockOut != nil {
		ts := time.Unix(*model.NewClockOut, 0)
		clockOut = &ts
	}

	return &entities.AttendanceCorrection{
		ID:           model.ID,
		UserID:       model.UserID,
		Date:         time.Unix(model.Date, 0),
		NewClockIn:   clockIn,
		NewClockOut:  clockOut,
		Reason:       model.Reason,
		Status:       entities.RequestStatus(model.Status),
		ApproverID:   approverID,
		DecisionNote: model.DecisionNote,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}
