package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"estatehub/internal/pkg/mailer"
	"estatehub/internal/pkg/validator"
)

const minMessageLen = 10

type Service struct {
	mailer mailer.Mailer
	to     string
}

// NewService sends contact form mail to the given inbox. A nil mailer or
// empty inbox makes every Send fail with ErrNotConfigured.
func NewService(m mailer.Mailer, to string) *Service {
	return &Service{mailer: m, to: strings.TrimSpace(to)}
}

func (s *Service) Send(ctx context.Context, req SendRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return fmt.Errorf("%w: name, email, and message are required", ErrValidation)
	}
	if !validator.Var(email, "email") {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if len([]rune(message)) < minMessageLen {
		return fmt.Errorf("%w: message must be at least %d characters long", ErrValidation, minMessageLen)
	}
	if s.mailer == nil || s.to == "" {
		return ErrNotConfigured
	}

	err := s.mailer.Send(ctx, mailer.Message{
		To:      []string{s.to},
		ReplyTo: email,
		Subject: "Contact Form Message from " + name,
		Body:    fmt.Sprintf("New Contact Form Message\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n", name, email, message),
	})
	if errors.Is(err, mailer.ErrNotConfigured) {
		return ErrNotConfigured
	}
	if err != nil {
		log.Printf("contact_send_failed reply_to=%s err=%v", email, err)
		return ErrSendFailed
	}

	log.Printf("contact_sent reply_to=%s", email)
	return nil
}
