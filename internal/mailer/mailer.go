// Package mailer delivers contact form submissions.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

var (
	ErrNotConfigured = errors.New("SMTP credentials not configured")
	ErrEmptyField    = errors.New("name, email and message are required")
)

type Message struct {
	Name    string
	Email   string
	Message string
}

// Validate trims the message and checks that every field is present.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return ErrEmptyField
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		return fmt.Errorf("header injection in contact fields")
	}
	return nil
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPMailer struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string

	// send defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.User == "" || m.Pass == "" || m.ToEmail == "" {
		return ErrNotConfigured
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	send := m.send
	if send == nil {
		send = smtp.SendMail
	}

	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	if err := send(net.JoinHostPort(m.Host, m.Port), auth, m.User, []string{m.ToEmail}, m.compose(msg)); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) compose(msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	return []byte("To: " + m.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
