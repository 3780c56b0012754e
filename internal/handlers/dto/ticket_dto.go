package dto

import (
	"time"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
)

// CreateTicketRequest representa a requisição para criar um ticket
type CreateTicketRequest struct {
	Subject       string     `json:"subject" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	Assignee      string     `json:"assignee"`
	Assignees     []string   `json:"assignees"`
	Tags          []string   `json:"tags" binding:"required"`
	Priority      string     `json:"priority" binding:"required,oneof=Low Medium High"`
	Status        string     `json:"status" binding:"required,oneof=Open 'In Progress' Solved"`
	DueAt         *time.Time `json:"dueAt"`
	MID           string     `json:"mid"`
	DBA           string     `json:"dba"`
	ContactNumber string     `json:"contactNumber"`
	ContactPerson string     `json:"contactPerson"`
	Notes         string     `json:"notes"`
}

// UpdateTicketRequest representa uma atualização parcial de ticket
type UpdateTicketRequest struct {
	Subject       *string    `json:"subject"`
	Description   *string    `json:"description"`
	Assignee      *string    `json:"assignee"`
	Assignees     []string   `json:"assignees"`
	Tags          []string   `json:"tags"`
	Priority      *string    `json:"priority" binding:"omitempty,oneof=Low Medium High"`
	Status        *string    `json:"status" binding:"omitempty,oneof=Open 'In Progress' Solved"`
	DueAt         *time.Time `json:"dueAt"`
	MID           *string    `json:"mid"`
	DBA           *string    `json:"dba"`
	ContactNumber *string    `json:"contactNumber"`
	ContactPerson *string    `json:"contactPerson"`
	Notes         *string    `json:"notes"`
}

// UpdateStatusRequest troca somente o status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Open 'In Progress' Solved"`
}

// AttachmentResponse descreve um anexo persistido
type AttachmentResponse struct {
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// AttachmentsResponse é o payload do upload de anexos
type AttachmentsResponse struct {
	Attachments []AttachmentResponse `json:"attachments"`
}

// TicketResponse representa a resposta de um ticket
type TicketResponse struct {
	ID            string               `json:"id"`
	Subject       string               `json:"subject"`
	Description   string               `json:"description"`
	Assignee      string               `json:"assignee"`
	Assignees     []string             `json:"assignees"`
	CreatedBy     string               `json:"createdBy"`
	Tags          []string             `json:"tags"`
	Priority      string               `json:"priority"`
	Status        string               `json:"status"`
	DueAt         *time.Time           `json:"dueAt,omitempty"`
	MID           string               `json:"mid,omitempty"`
	DBA           string               `json:"dba,omitempty"`
	ContactNumber string               `json:"contactNumber,omitempty"`
	ContactPerson string               `json:"contactPerson,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	Attachments   []AttachmentResponse `json:"attachments,omitempty"`
	IsDeleted     bool                 `json:"isDeleted"`
	DeletedAt     *time.Time           `json:"deletedAt,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ToAttachmentResponses converte descritores de anexo
func ToAttachmentResponses(items []entities.Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, len(items))
	for i, item := range items {
		out[i] = AttachmentResponse{
			Filename:   item.Filename,
			URL:        item.URL,
			MimeType:   item.MimeType,
			Size:       item.Size,
			UploadedBy: item.UploadedBy,
			UploadedAt: item.UploadedAt,
		}
	}
	return out
}

// ToTicketResponse converte uma entidade Ticket para TicketResponse.
// A flag de deleção só é exposta para Admin; para os demais a entidade
// deletada simplesmente não chega aqui.
func ToTicketResponse(ticket *entities.Ticket, admin bool) TicketResponse {
	response := TicketResponse{
		ID:            ticket.ID,
		Subject:       ticket.Subject,
		Description:   ticket.Description,
		Assignee:      ticket.AssigneeID,
		Assignees:     ticket.AssigneeIDs,
		CreatedBy:     ticket.CreatedBy,
		Tags:          ticket.Tags,
		Priority:      string(ticket.Priority),
		Status:        string(ticket.Status),
		DueAt:         ticket.DueAt,
		MID:           ticket.MID,
		DBA:           ticket.DBA,
		ContactNumber: ticket.ContactNumber,
		ContactPerson: ticket.ContactPerson,
		Notes:         ticket.Notes,
		Attachments:   ToAttachmentResponses(ticket.Attachments),
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
	if admin {
		response.IsDeleted = ticket.IsDeleted()
		response.DeletedAt = ticket.DeletedAt
	}
	return response
}

// ToTicketResponses converte uma lista de tickets
func ToTicketResponses(tickets []*entities.Ticket, admin bool) []TicketResponse {
	responses := make([]TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = ToTicketResponse(ticket, admin)
	}
	return responses
}
