package entities

import "time"

// Ações auditadas no histórico de tickets
const (
	ActivityCreateTicket = "CREATE_TICKET"
	ActivityUpdateTicket = "UPDATE_TICKET"
	ActivityUpdateStatus = "UPDATE_STATUS"
	ActivityDeleteTicket = "DELETE_TICKET"
)

// ActivityLog registra uma ação sobre um ticket para auditoria.
// A escrita é fire-and-forget: falha de auditoria nunca bloqueia a
// operação principal.
type ActivityLog struct {
	ID        string
	Action    string
	UserID    string
	TicketID  string
	Details   string
	Timestamp time.Time
}
