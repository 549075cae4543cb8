// Package mail delivers the generated initial password to newly created
// users. Delivery is best-effort; callers log failures and carry on.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/impresthq/imprest_backend/internal/platform/config"
)

// Mailer sends account notifications.
type Mailer interface {
	SendGeneratedPassword(ctx context.Context, to, name, password string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

// NewMailer returns an SMTP mailer, or a no-op mailer when no SMTP host is
// configured.
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return NoopMailer{}
	}
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *SMTPMailer) SendGeneratedPassword(ctx context.Context, to, name, password string) error {
	subject := "Your imprest account"
	body := fmt.Sprintf(
		"Hello %s,\r\n\r\nAn imprest account has been created for you.\r\nYour temporary password is: %s\r\n\r\nPlease change it after your first login.\r\n",
		name, password,
	)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body))

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send password mail to %s: %w", to, err)
	}
	return nil
}

// NoopMailer drops mail; used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) SendGeneratedPassword(ctx context.Context, to, name, password string) error {
	return nil
}
