package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Muhammaddarab1/spadepayits/internal/domain/ports"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/config"
)

// SMTPMailer implementa ports.Mailer via SMTP com autenticação PLAIN
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger ports.Logger
}

// NewSMTPMailer cria o remetente de e-mails transacionais
func NewSMTPMailer(cfg config.SMTPConfig, logger ports.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send envia a mensagem. O chamador trata o envio como fire-and-forget:
// o erro retornado serve para log, nunca para interromper o fluxo.
func (m *SMTPMailer) Send(_ context.Context, mail ports.Mail) error {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: Ticket System <%s>\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", mail.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mail.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(mail.HTML)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, from, []string{mail.To}, []byte(msg.String())); err != nil {
		m.logger.Error("failed to send email", "to", mail.To, "error", err)
		return fmt.Errorf("send mail: %w", err)
	}

	m.logger.Info("email sent", "to", mail.To, "subject", mail.Subject)
	return nil
}
