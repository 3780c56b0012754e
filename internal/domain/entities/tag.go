package entities

import (
	"errors"
	"strings"
	"time"
)

// Tag é uma entrada do catálogo gerenciado de tags de ticket.
// O vocabulário é aberto; desativar uma tag a esconde das listagens
// comuns sem invalidar tickets que já a usam.
type Tag struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade Tag
func (t *Tag) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("tag name is required")
	}
	return nil
}
