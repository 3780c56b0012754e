package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/entities"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/dto"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// AttendanceHandler lida com ponto, ausências e correções
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler cria um novo AttendanceHandler
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// Record registra um evento de ponto do usuário autenticado
// @Summary Registra um evento de ponto
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.RecordAttendanceRequest true "Evento"
// @Success 201 {object} dto.AttendanceEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/record [post]
func (h *AttendanceHandler) Record(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	event, err := h.attendanceService.Record(c.Request.Context(), actor, entities.AttendanceAction(req.Action), req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAttendanceEventResponse(event))
}

// Report monta o relatório de ponto de um intervalo. O parâmetro
// month ("YYYY-MM") tem precedência sobre start/end.
// @Summary Relatório de ponto
// @Tags attendance
// @Produce json
// @Param month query string false "Mês no formato YYYY-MM"
// @Param start query string false "Início do intervalo (RFC 3339)"
// @Param end query string false "Fim do intervalo (RFC 3339)"
// @Param user query string false "Limita a um usuário"
// @Success 200 {object} dto.AttendanceReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/report [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	input := services.ReportInput{Month: c.Query("month")}

	if raw := c.Query("start"); raw != "" {
		start, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.attendance.invalid_range"))
			return
		}
		input.Start = &start
	}
	if raw := c.Query("end"); raw != "" {
		end, err := parseTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.attendance.invalid_range"))
			return
		}
		input.End = &end
	}
	if user := c.Query("user"); user != "" {
		input.UserID = &user
	}

	report, err := h.attendanceService.BuildReport(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceReportResponse(report))
}

// SubmitLeave registra uma solicitação de ausência pendente
// @Summary Solicita uma ausência
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.SubmitLeaveRequest true "Solicitação"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/leave [post]
func (h *AttendanceHandler) SubmitLeave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	leave, err := h.attendanceService.SubmitLeave(c.Request.Context(), actor, req.StartDate, req.EndDate, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(leave))
}

// MyLeaves lista as solicitações de ausência do usuário autenticado
// @Summary Lista as próprias solicitações de ausência
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.LeaveRequestResponse
// @Security BearerAuth
// @Router /api/attendance/leave/mine [get]
func (h *AttendanceHandler) MyLeaves(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	leaves, err := h.attendanceService.MyLeaves(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponses(leaves))
}

// PendingLeaves lista as solicitações de ausência pendentes
// @Summary Lista solicitações de ausência pendentes
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.LeaveRequestResponse
// @Security BearerAuth
// @Router /api/attendance/leave/pending [get]
func (h *AttendanceHandler) PendingLeaves(c *gin.Context) {
	leaves, err := h.attendanceService.PendingLeaves(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponses(leaves))
}

// DecideLeave aprova ou rejeita uma solicitação de ausência
// @Summary Decide uma solicitação de ausência
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "ID da solicitação"
// @Param request body dto.DecisionRequest true "Decisão"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/leave/{id}/decision [patch]
func (h *AttendanceHandler) DecideLeave(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	leave, err := h.attendanceService.DecideLeave(c.Request.Context(), actor, c.Param("id"), req.Approve, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(leave))
}

// SubmitCorrection registra um pedido de correção de ponto pendente
// @Summary Solicita uma correção de ponto
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.SubmitCorrectionRequest true "Pedido"
// @Success 201 {object} dto.CorrectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/corrections [post]
func (h *AttendanceHandler) SubmitCorrection(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.SubmitCorrectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	corr, err := h.attendanceService.SubmitCorrection(c.Request.Context(), actor, services.SubmitCorrectionInput{
		Date:        req.Date,
		NewClockIn:  req.NewClockIn,
		NewClockOut: req.NewClockOut,
		Reason:      req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCorrectionResponse(corr))
}

// MyCorrections lista os pedidos de correção do usuário autenticado
// @Summary Lista os próprios pedidos de correção
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.CorrectionResponse
// @Security BearerAuth
// @Router /api/attendance/corrections/mine [get]
func (h *AttendanceHandler) MyCorrections(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	corrs, err := h.attendanceService.MyCorrections(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCorrectionResponses(corrs))
}

// PendingCorrections lista os pedidos de correção pendentes
// @Summary Lista pedidos de correção pendentes
// @Tags attendance
// @Produce json
// @Success 200 {array} dto.CorrectionResponse
// @Security BearerAuth
// @Router /api/attendance/corrections/pending [get]
func (h *AttendanceHandler) PendingCorrections(c *gin.Context) {
	corrs, err := h.attendanceService.PendingCorrections(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCorrectionResponses(corrs))
}

// DecideCorrection aprova ou rejeita um pedido de correção
// @Summary Decide um pedido de correção
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "ID do pedido"
// @Param request body dto.DecisionRequest true "Decisão"
// @Success 200 {object} dto.CorrectionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/attendance/corrections/{id}/decision [patch]
func (h *AttendanceHandler) DecideCorrection(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.auth.missing_token"))
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	corr, err := h.attendanceService.DecideCorrection(c.Request.Context(), actor, c.Param("id"), req.Approve, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCorrectionResponse(corr))
}

// parseTime aceita RFC 3339 ou data simples (YYYY-MM-DD)
func parseTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
