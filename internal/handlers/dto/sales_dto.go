package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// CreateSalesRequest representa a requisição para criar um sales ticket
type CreateSalesRequest struct {
	BusinessName      string     `json:"businessName" binding:"required"`
	Address           string     `json:"address" binding:"required"`
	OwnerName         string     `json:"ownerName" binding:"required"`
	TaxFileName       string     `json:"taxFileName"`
	ContactPersonName string     `json:"contactPersonName" binding:"required"`
	ContactNumber     string     `json:"contactNumber" binding:"required"`
	Email             string     `json:"email" binding:"required,email"`
	EINOrSSN          string     `json:"einOrSsn" binding:"required"`
	TurnaroundTime    string     `json:"turnaroundTime" binding:"required"`
	DueAt             *time.Time `json:"dueAt"`
	Assignee          string     `json:"assignee"`
	Assignees         []string   `json:"assignees"`
	Notes             string     `json:"notes"`
}

// UpdateSalesRequest representa uma atualização parcial de sales ticket
type UpdateSalesRequest struct {
	BusinessName      *string    `json:"businessName"`
	Address           *string    `json:"address"`
	OwnerName         *string    `json:"ownerName"`
	TaxFileName       *string    `json:"taxFileName"`
	ContactPersonName *string    `json:"contactPersonName"`
	ContactNumber     *string    `json:"contactNumber"`
	Email             *string    `json:"email" binding:"omitempty,email"`
	EINOrSSN          *string    `json:"einOrSsn"`
	TurnaroundTime    *string    `json:"turnaroundTime"`
	DueAt             *time.Time `json:"dueAt"`
	Assignee          *string    `json:"assignee"`
	Assignees         []string   `json:"assignees"`
	Status            *string    `json:"status" binding:"omitempty,oneof=Open 'In Progress' Solved"`
	Notes             *string    `json:"notes"`
}

// SalesResponse representa a resposta de um sales ticket
type SalesResponse struct {
	ID                string               `json:"id"`
	BusinessName      string               `json:"businessName"`
	Address           string               `json:"address"`
	OwnerName         string               `json:"ownerName"`
	TaxFileName       string               `json:"taxFileName,omitempty"`
	ContactPersonName string               `json:"contactPersonName"`
	ContactNumber     string               `json:"contactNumber"`
	Email             string               `json:"email"`
	EINOrSSN          string               `json:"einOrSsn"`
	TurnaroundTime    string               `json:"turnaroundTime"`
	Assignee          string               `json:"assignee"`
	Assignees         []string             `json:"assignees"`
	CreatedBy         string               `json:"createdBy"`
	Status            string               `json:"status"`
	DueAt             *time.Time           `json:"dueAt,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	Attachments       []AttachmentResponse `json:"attachments,omitempty"`
	IsDeleted         bool                 `json:"isDeleted"`
	DeletedAt         *time.Time           `json:"deletedAt,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// ToSalesResponse converte uma entidade SalesTicket para SalesResponse
func ToSalesResponse(ticket *entities.SalesTicket, admin bool) SalesResponse {
	response := SalesResponse{
		ID:                ticket.ID,
		BusinessName:      ticket.BusinessName,
		Address:           ticket.Address,
		OwnerName:         ticket.OwnerName,
		TaxFileName:       ticket.TaxFileName,
		ContactPersonName: ticket.ContactPersonName,
		ContactNumber:     ticket.ContactNumber,
		Email:             ticket.Email,
		EINOrSSN:          ticket.EINOrSSN,
		TurnaroundTime:    ticket.TurnaroundTime,
		Assignee:          ticket.AssigneeID,
		Assignees:         ticket.AssigneeIDs,
		CreatedBy:         ticket.CreatedBy,
		Status:            string(ticket.Status),
		DueAt:             ticket.DueAt,
		Notes:             ticket.Notes,
		Attachments:       ToAttachmentResponses(ticket.Attachments),
		CreatedAt:         ticket.CreatedAt,
		UpdatedAt:         ticket.UpdatedAt,
	}
	if admin {
		response.IsDeleted = ticket.IsDeleted()
		response.DeletedAt = ticket.DeletedAt
	}
	return response
}

// ToSalesResponses converte uma lista de sales tickets
func ToSalesResponses(tickets []*entities.SalesTicket, admin bool) []SalesResponse {
	responses := make([]SalesResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = ToSalesResponse(ticket, admin)
	}
	return responses
}
