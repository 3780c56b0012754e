package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// TicketHandler lida com requisições HTTP de tickets de suporte
type TicketHandler struct {
	ticketService *services.TicketService
	maxFiles      int
}

// NewTicketHandler cria um novo TicketHandler
func NewTicketHandler(ticketService *services.TicketService, maxFiles int) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		maxFiles:      maxFiles,
	}
}

// CreateTicket cria um ticket
// @Summary Cria um ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body dto.CreateTicketRequest true "Dados do ticket"
// @Success 201 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), actor, services.CreateTicketInput{
		Subject:       req.Subject,
		Description:   req.Description,
		AssigneeID:    req.Assignee,
		AssigneeIDs:   req.Assignees,
		Tags:          req.Tags,
		Priority:      entities.TicketPriority(req.Priority),
		Status:        entities.TicketStatus(req.Status),
		DueAt:         req.DueAt,
		MID:           req.MID,
		DBA:           req.DBA,
		ContactNumber: req.ContactNumber,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket, isAdmin(c)))
}

// ListTickets lista tickets sob o escopo de visibilidade do requisitante
// @Summary Lista tickets
// @Tags tickets
// @Produce json
// @Param assignee query string false "Filtra por responsável"
// @Param assignees query string false "Filtra por responsáveis (CSV)"
// @Param status query string false "Filtra por status"
// @Param priority query string false "Filtra por prioridade"
// @Param tags query string false "Filtra por tags (CSV)"
// @Success 200 {array} dto.TicketResponse
// @Security BearerAuth
// @Router /api/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	input := services.ListTicketsInput{
		AssigneeIDs: splitCSV(c.Query("assignees")),
		Tags:        splitCSV(c.Query("tags")),
	}
	if assignee := c.Query("assignee"); assignee != "" {
		input.AssigneeIDs = append(input.AssigneeIDs, assignee)
	}
	if status := c.Query("status"); status != "" {
		value := entities.TicketStatus(status)
		input.Status = &value
	}
	if priority := c.Query("priority"); priority != "" {
		value := entities.TicketPriority(priority)
		input.Priority = &value
	}

	tickets, err := h.ticketService.ListTickets(c.Request.Context(), actor, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponses(tickets, isAdmin(c)))
}

// ListDeletedTickets lista tickets deletados
// @Summary Lista tickets deletados
// @Tags tickets
// @Produce json
// @Success 200 {array} dto.TicketResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/deleted [get]
func (h *TicketHandler) ListDeletedTickets(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	tickets, err := h.ticketService.ListDeletedTickets(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponses(tickets, isAdmin(c)))
}

// GetTicket busca um ticket por ID
// @Summary Busca um ticket
// @Tags tickets
// @Produce json
// @Param id path string true "ID do ticket"
// @Success 200 {object} dto.TicketResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket, isAdmin(c)))
}

// UpdateTicket aplica uma atualização parcial
// @Summary Atualiza um ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "ID do ticket"
// @Param request body dto.UpdateTicketRequest true "Campos a alterar"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	input := services.UpdateTicketInput{
		Subject:       req.Subject,
		Description:   req.Description,
		AssigneeID:    req.Assignee,
		AssigneeIDs:   req.Assignees,
		Tags:          req.Tags,
		DueAt:         req.DueAt,
		MID:           req.MID,
		DBA:           req.DBA,
		ContactNumber: req.ContactNumber,
		ContactPerson: req.ContactPerson,
		Notes:         req.Notes,
	}
	if req.Priority != nil {
		value := entities.TicketPriority(*req.Priority)
		input.Priority = &value
	}
	if req.Status != nil {
		value := entities.TicketStatus(*req.Status)
		input.Status = &value
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket, isAdmin(c)))
}

// UpdateStatus troca somente o status do ticket
// @Summary Troca o status de um ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "ID do ticket"
// @Param request body dto.UpdateStatusRequest true "Novo status"
// @Success 200 {object} dto.TicketResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/{id}/status [patch]
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ticket, err := h.ticketService.UpdateStatus(c.Request.Context(), actor, c.Param("id"), entities.TicketStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket, isAdmin(c)))
}

// DeleteTicket marca um ticket como deletado
// @Summary Deleta um ticket
// @Tags tickets
// @Produce json
// @Param id path string true "ID do ticket"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Ticket deleted successfully"})
}

// AddAttachments anexa arquivos enviados via multipart ao ticket
// @Summary Anexa arquivos a um ticket
// @Tags tickets
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID do ticket"
// @Param files formData file true "Arquivos"
// @Success 200 {object} dto.AttachmentsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/tickets/{id}/attachments [post]
func (h *TicketHandler) AddAttachments(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	uploads, closeAll, err := parseUploads(c, h.maxFiles)
	if err != nil {
		return
	}
	defer closeAll()

	items, err := h.ticketService.AddAttachments(c.Request.Context(), actor, c.Param("id"), uploads)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttachmentsResponse{Attachments: dto.ToAttachmentResponses(items)})
}

// splitCSV quebra um parâmetro CSV ignorando itens vazios
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
