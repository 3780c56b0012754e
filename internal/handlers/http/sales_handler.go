package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// SalesHandler lida com requisições HTTP de sales tickets
type SalesHandler struct {
	salesService *services.SalesService
	maxFiles     int
}

// NewSalesHandler cria um novo SalesHandler
func NewSalesHandler(salesService *services.SalesService, maxFiles int) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		maxFiles:     maxFiles,
	}
}

// CreateSales cria um sales ticket
// @Summary Cria um sales ticket
// @Tags sales
// @Accept json
// @Produce json
// @Param request body dto.CreateSalesRequest true "Dados do sales ticket"
// @Success 201 {object} dto.SalesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales [post]
func (h *SalesHandler) CreateSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.CreateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	ticket, err := h.salesService.CreateSales(c.Request.Context(), actor, services.CreateSalesInput{
		BusinessName:      req.BusinessName,
		Address:           req.Address,
		OwnerName:         req.OwnerName,
		TaxFileName:       req.TaxFileName,
		ContactPersonName: req.ContactPersonName,
		ContactNumber:     req.ContactNumber,
		Email:             req.Email,
		EINOrSSN:          req.EINOrSSN,
		TurnaroundTime:    req.TurnaroundTime,
		DueAt:             req.DueAt,
		AssigneeID:        req.Assignee,
		AssigneeIDs:       req.Assignees,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSalesResponse(ticket, isAdmin(c)))
}

// ListSales lista sales tickets
// @Summary Lista sales tickets
// @Tags sales
// @Produce json
// @Param status query string false "Filtra por status"
// @Success 200 {array} dto.SalesResponse
// @Security BearerAuth
// @Router /api/sales [get]
func (h *SalesHandler) ListSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var status *entities.TicketStatus
	if raw := c.Query("status"); raw != "" {
		value := entities.TicketStatus(raw)
		status = &value
	}

	tickets, err := h.salesService.ListSales(c.Request.Context(), actor, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesResponses(tickets, isAdmin(c)))
}

// GetSales busca um sales ticket por ID
// @Summary Busca um sales ticket
// @Tags sales
// @Produce json
// @Param id path string true "ID do sales ticket"
// @Success 200 {object} dto.SalesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id} [get]
func (h *SalesHandler) GetSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	ticket, err := h.salesService.GetSales(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesResponse(ticket, isAdmin(c)))
}

// UpdateSales aplica uma atualização parcial
// @Summary Atualiza um sales ticket
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID do sales ticket"
// @Param request body dto.UpdateSalesRequest true "Campos a alterar"
// @Success 200 {object} dto.SalesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id} [put]
func (h *SalesHandler) UpdateSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.UpdateSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	input := services.UpdateSalesInput{
		BusinessName:      req.BusinessName,
		Address:           req.Address,
		OwnerName:         req.OwnerName,
		TaxFileName:       req.TaxFileName,
		ContactPersonName: req.ContactPersonName,
		ContactNumber:     req.ContactNumber,
		Email:             req.Email,
		EINOrSSN:          req.EINOrSSN,
		TurnaroundTime:    req.TurnaroundTime,
		DueAt:             req.DueAt,
		AssigneeID:        req.Assignee,
		AssigneeIDs:       req.Assignees,
		Notes:             req.Notes,
	}
	if req.Status != nil {
		value := entities.TicketStatus(*req.Status)
		input.Status = &value
	}

	ticket, err := h.salesService.UpdateSales(c.Request.Context(), actor, c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalesResponse(ticket, isAdmin(c)))
}

// DeleteSales marca um sales ticket como deletado
// @Summary Deleta um sales ticket
// @Tags sales
// @Produce json
// @Param id path string true "ID do sales ticket"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id} [delete]
func (h *SalesHandler) DeleteSales(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	if err := h.salesService.DeleteSales(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Sales ticket deleted successfully"})
}

// AddAttachments anexa arquivos enviados via multipart ao sales ticket
// @Summary Anexa arquivos a um sales ticket
// @Tags sales
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID do sales ticket"
// @Param files formData file true "Arquivos"
// @Success 200 {object} dto.AttachmentsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/sales/{id}/attachments [post]
func (h *SalesHandler) AddAttachments(c *gin.Context) {
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

	items, err := h.salesService.AddAttachments(c.Request.Context(), actor, c.Param("id"), uploads)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttachmentsResponse{Attachments: dto.ToAttachmentResponses(items)})
}
