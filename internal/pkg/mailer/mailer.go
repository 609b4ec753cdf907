package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"strings"
)

var ErrNotConfigured = errors.New("mail is not configured")

type Message struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain-text mail through an authenticated relay (STARTTLS on 587).
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
	send sendFunc
}

func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	if from == "" {
		from = user
	}
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if m.host == "" || m.user == "" || m.pass == "" {
		return ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return errors.New("mail has no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	addr := m.host + ":" + strconv.Itoa(m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := m.send(addr, auth, m.from, msg.To, m.render(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) render(msg Message) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", sanitizeHeader(msg.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(msg.Body)
	return []byte(b.String())
}

// sanitizeHeader keeps user input from injecting extra headers.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// DevConsoleMailer logs mail instead of sending it.
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsoleMailer(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) Send(_ context.Context, msg Message) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q body=%q", strings.Join(msg.To, ","), msg.Subject, msg.Body)
	}
	return nil
}
