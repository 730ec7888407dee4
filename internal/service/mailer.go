package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"log/slog"
)

// Mailer delivers sign-in mail.
type Mailer interface {
	SendMagicLink(to, link string) error
}

// LogMailer writes the link to the log instead of sending mail, for
// local development where no SMTP relay is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a mailer that logs links instead of sending them.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendMagicLink(to, link string) error {
	m.logger.Info("magic link generated", "to", to, "link", link)
	return nil
}

// SMTPMailer delivers mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a mailer that sends via SMTP.
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (m *SMTPMailer) SendMagicLink(to, link string) error {
	const subject = "Sign in to ScribeCloud"
	body := fmt.Sprintf(
		"Hi,\n\nUse the link below to sign in and get back to your transcripts:\n\n%s\n\nThe link is valid for 15 minutes and works once.\n\n— ScribeCloud",
		link)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n\r\n", subject)
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, []byte(msg.String()))
}
