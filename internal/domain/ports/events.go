package ports

import "github.com/Muhammaddarab1/spadepayits/internal/domain/entities"

// EventSink recebe eventos de auditoria para distribuição em tempo real.
// Publish nunca bloqueia o fluxo principal: consumidores lentos são
// descartados pela implementação.
type EventSink interface {
	Publish(event entities.ActivityLog)
}
