package postgres

import (
	"gorm.io/datatypes"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                   string                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email                string                              `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                 string                              `gorm:"type:varchar(500);not null"`
	PasswordHash         string                              `gorm:"type:varchar(255);not null"`
	Role                 string                              `gorm:"type:varchar(50);not null;index"`
	Overrides            datatypes.JSONType[map[string]bool] `gorm:"type:jsonb"`
	MustChangePassword   bool                                `gorm:"not null;default:true"`
	ResetPasswordToken   *string                             `gorm:"type:varchar(64);index"`
	ResetPasswordExpires *int64
	CreatedAt            int64   `gorm:"autoCreateTime;index"`
	UpdatedAt            int64   `gorm:"autoUpdateTime"`
	DeletedAt            *int64  `gorm:"index"` // Soft delete
	DeletedBy            *string `gorm:"type:uuid"`
}

func (UserModel) TableName() string {
	return "users"
}

// RoleModel é o model GORM para o registro de roles
type RoleModel struct {
	ID          string                              `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string                              `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string                              `gorm:"type:varchar(500)"`
	Permissions datatypes.JSONType[map[string]bool] `gorm:"type:jsonb"`
	CreatedAt   int64                               `gorm:"autoCreateTime"`
	UpdatedAt   int64                               `gorm:"autoUpdateTime"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// TicketModel é o model GORM para tickets de suporte
type TicketModel struct {
	ID            string                                    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Subject       string                                    `gorm:"type:varchar(500);not null"`
	Description   string                                    `gorm:"type:text;not null"`
	AssigneeID    string                                    `gorm:"type:uuid;index"`
	AssigneeIDs   datatypes.JSONSlice[string]               `gorm:"type:jsonb"`
	CreatedBy     string                                    `gorm:"type:uuid;not null;index"`
	Tags          datatypes.JSONSlice[string]               `gorm:"type:jsonb"`
	Priority      string                                    `gorm:"type:varchar(20);not null"`
	Status        string                                    `gorm:"type:varchar(20);not null;index"`
	DueAt         *int64                                    `gorm:"index"`
	MID           string                                    `gorm:"column:mid;type:varchar(100)"`
	DBA           string                                    `gorm:"column:dba;type:varchar(255)"`
	ContactNumber string                                    `gorm:"type:varchar(50)"`
	ContactPerson string                                    `gorm:"type:varchar(255)"`
	Notes         string                                    `gorm:"type:text"`
	Attachments   datatypes.JSONSlice[entities.Attachment]  `gorm:"type:jsonb"`
	CreatedAt     int64                                     `gorm:"autoCreateTime;index"`
	UpdatedAt     int64                                     `gorm:"autoUpdateTime"`
	DeletedAt     *int64                                    `gorm:"index"` // Soft delete
	DeletedBy     *string                                   `gorm:"type:uuid"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// SalesTicketModel é o model GORM para tickets de onboarding
type SalesTicketModel struct {
	ID                string                                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BusinessName      string                                   `gorm:"type:varchar(255);not null"`
	Address           string                                   `gorm:"type:varchar(500);not null"`
	OwnerName         string                                   `gorm:"type:varchar(255);not null"`
	TaxFileName       string                                   `gorm:"type:varchar(255)"`
	ContactPersonName string                                   `gorm:"type:varchar(255);not null"`
	ContactNumber     string                                   `gorm:"type:varchar(50);not null"`
	Email             string                                   `gorm:"type:varchar(255);not null"`
	EINOrSSN          string                                   `gorm:"column:ein_or_ssn;type:varchar(50);not null"`
	TurnaroundTime    string                                   `gorm:"type:varchar(100);not null"`
	AssigneeID        string                                   `gorm:"type:uuid;index"`
	AssigneeIDs       datatypes.JSONSlice[string]              `gorm:"type:jsonb"`
	CreatedBy         string                                   `gorm:"type:uuid;not null;index"`
	Status            string                                   `gorm:"type:varchar(20);not null;index"`
	DueAt             *int64                                   `gorm:"index"`
	Notes             string                                   `gorm:"type:text"`
	Attachments       datatypes.JSONSlice[entities.Attachment] `gorm:"type:jsonb"`
	CreatedAt         int64                                    `gorm:"autoCreateTime;index"`
	UpdatedAt         int64                                    `gorm:"autoUpdateTime"`
	DeletedAt         *int64                                   `gorm:"index"` // Soft delete
	DeletedBy         *string                                  `gorm:"type:uuid"`
}

func (SalesTicketModel) TableName() string {
	return "sales_tickets"
}

// TagModel é o model GORM para o catálogo de tags
type TagModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Active    bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (TagModel) TableName() string {
	return "tags"
}

// AttendanceModel é o model GORM para eventos de ponto
type AttendanceModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    string `gorm:"type:uuid;not null;index"`
	Action    string `gorm:"type:varchar(20);not null"`
	Timestamp int64  `gorm:"not null;index"`
	Note      string `gorm:"type:varchar(500)"`
}

func (AttendanceModel) TableName() string {
	return "attendance_events"
}

// LeaveRequestModel é o model GORM para solicitações de ausência
type LeaveRequestModel struct {
	ID           string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       string  `gorm:"type:uuid;not null;index"`
	StartDate    int64   `gorm:"not null"`
	EndDate      int64   `gorm:"not null"`
	Reason       string  `gorm:"type:varchar(1000);not null"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApproverID   *string `gorm:"type:uuid"`
	DecisionNote string  `gorm:"type:varchar(1000)"`
	CreatedAt    int64   `gorm:"autoCreateTime;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime"`
}

func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// CorrectionModel é o model GORM para correções de ponto
type CorrectionModel struct {
	ID           string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID       string  `gorm:"type:uuid;not null;index"`
	Date         int64   `gorm:"not null;index"`
	NewClockIn   *int64
	NewClockOut  *int64
	Reason       string  `gorm:"type:varchar(1000);not null"`
	Status       string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	ApproverID   *string `gorm:"type:uuid"`
	DecisionNote string  `gorm:"type:varchar(1000)"`
	CreatedAt    int64   `gorm:"autoCreateTime;index"`
	UpdatedAt    int64   `gorm:"autoUpdateTime"`
}

func (CorrectionModel) TableName() string {
	return "attendance_corrections"
}

// ActivityLogModel é o model GORM para o histórico de auditoria
type ActivityLogModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Action    string `gorm:"type:varchar(50);not null"`
	UserID    string `gorm:"type:uuid;not null;index"`
	TicketID  string `gorm:"type:uuid;not null;index"`
	Details   string `gorm:"type:varchar(1000);not null"`
	Timestamp int64  `gorm:"not null;index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
