// Package smtp delivers login codes over plain SMTP. Code emails are
// the only outbound mail this service sends.
package smtp

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/recipeshare/api/internal/config"
)

// Mailer sends emails. The credential service depends on this
// interface so tests can substitute a fake.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

type mailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewMailer builds a Mailer from config. When no username is set the
// server is assumed to accept unauthenticated mail, which fits local
// catch-all relays like MailHog.
func NewMailer(cfg *config.Config) Mailer {
	m := &mailer{
		addr: fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort),
		from: cfg.SMTPFrom,
	}
	if cfg.SMTPUsername != "" {
		m.auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return m
}

func (m *mailer) SendEmail(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
