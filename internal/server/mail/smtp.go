package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
)

// SMTPSender delivers mail over SMTP with PLAIN authentication.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{
		addr: net.JoinHostPort(host, port),
		auth: smtp.PlainAuth("", username, password, host),
		from: from,
	}
}

// Send delivers a plain-text UTF-8 message. The context is accepted for
// interface compatibility; net/smtp has no cancellation support.
func (s *SMTPSender) Send(_ context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	headers := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n",
		from, to, subject)
	return []byte(headers + body)
}
