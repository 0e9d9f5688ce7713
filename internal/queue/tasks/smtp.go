package tasks

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers plain-text notifications over SMTP.
type SMTPSender struct {
	Addr string
	From string
}

func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{Addr: addr, From: from}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if s.Addr == "" || to == "" {
		return fmt.Errorf("smtp not configured")
	}
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)
	return smtp.SendMail(s.Addr, nil, s.From, []string{to}, []byte(msg.String()))
}
