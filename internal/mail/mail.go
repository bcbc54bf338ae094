// Package mail forwards contact form messages to the site owner over SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yorkei04/portfolio/internal/config"
)

// ErrNotConfigured is returned by Send when no SMTP credentials are set.
var ErrNotConfigured = errors.New("mail: SMTP credentials not configured")

// Contact is one contact form submission.
type Contact struct {
	Name    string
	Email   string
	Message string
}

// Sender delivers contact messages.
type Sender interface {
	Send(ctx context.Context, c Contact) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends mail through an authenticated SMTP relay.
type SMTP struct {
	cfg    config.SMTP
	logger *log.Logger
	send   sendFunc
}

// NewSMTP returns a sender for cfg. It is valid even when cfg has no
// credentials; Send then fails with ErrNotConfigured.
func NewSMTP(cfg config.SMTP, logger *log.Logger) *SMTP {
	if logger == nil {
		logger = log.Default()
	}
	return &SMTP{cfg: cfg, logger: logger, send: smtp.SendMail}
}

// Enabled reports whether Send can deliver.
func (s *SMTP) Enabled() bool { return s.cfg.Enabled() }

// Send mails c to the configured recipient with Reply-To set to the sender.
func (s *SMTP) Send(ctx context.Context, c Contact) error {
	if !s.cfg.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port
	if err := s.send(addr, auth, s.cfg.User, []string{s.cfg.To}, Compose(s.cfg, c)); err != nil {
		s.logger.Error("sending email", "err", err)
		return fmt.Errorf("send mail: %w", err)
	}
	s.logger.Info("email sent", "from", c.Name)
	return nil
}

// Compose builds the RFC 5322 message for c.
func Compose(cfg config.SMTP, c Contact) []byte {
	name := headerSafe(c.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, c.Name, c.Email, c.Message)

	var b strings.Builder
	b.WriteString("To: " + cfg.To + "\r\n")
	b.WriteString("Subject: Portfolio Contact: " + name + "\r\n")
	b.WriteString("From: " + cfg.User + "\r\n")
	if email := headerSafe(c.Email); email != "" {
		b.WriteString("Reply-To: " + email + "\r\n")
	}
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe drops line breaks so user input cannot add headers.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r", " ", "\n", " ").Replace(s)), " ")
}
