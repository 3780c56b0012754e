package ports

import "context"

// Mail é uma mensagem transacional (ex.: redefinição de senha)
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// Mailer define a interface para envio de e-mail.
// O envio é fire-and-forget do ponto de vista do domínio: falhas são
// logadas, nunca propagadas para o fluxo principal.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}
