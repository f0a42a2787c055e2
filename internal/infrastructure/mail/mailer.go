// Package mail delivers contact-form notifications to the shop owner.
package mail

import (
	"context"
	"fmt"
	"html"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/snapshot/storefront/internal/core/domain"
)

// Config holds SMTP settings. Host empty means SMTP is not configured.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

// Enabled reports whether enough settings are present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.NotifyTo != ""
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends notifications through an SMTP relay.
type SMTPMailer struct {
	sender sender
	from   string
	to     string
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPMailer{
		sender: gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:   from,
		to:     cfg.NotifyTo,
	}
}

func (m *SMTPMailer) SendContactNotification(ctx context.Context, msg domain.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.sender.DialAndSend(m.build(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg domain.ContactMessage) *gomail.Message {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", m.to)
	gm.SetHeader("Reply-To", msg.Email)
	gm.SetHeader("Subject", "New contact message: "+msg.Subject)

	body := fmt.Sprintf(`<h2>New contact message</h2>
<p><strong>From:</strong> %s &lt;%s&gt;</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)
	gm.SetBody("text/html", body)
	return gm
}

// LogMailer records notifications in the log. Used when SMTP is not configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendContactNotification(_ context.Context, msg domain.ContactMessage) error {
	m.log.Info().
		Str("contact_id", msg.ID).
		Str("email", msg.Email).
		Str("subject", msg.Subject).
		Msg("contact notification (smtp disabled)")
	return nil
}
