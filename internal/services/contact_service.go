package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer delivers a contact message through the configured provider.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type ContactService struct {
	mailer Mailer
}

func NewContactService(mailer Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

// Relay validates and forwards the submission. One attempt, no retry; the
// provider's error text is passed through for debugging.
func (s *ContactService) Relay(ctx context.Context, msg ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Subject) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return utils.ErrInvalidInput("All fields are required")
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		return &utils.AppError{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send email. Check server logs.",
			Detail:  err.Error(),
			Err:     err,
		}
	}
	return nil
}
