package email

import (
	"context"
	"fmt"

	"github.com/budget-pilot/backend/internal/application/adapter"
	"github.com/budget-pilot/backend/internal/integration/email/templates"
)

const passwordResetSubject = "Reset your Budget Pilot password"

// PasswordResetMailer sends password reset emails through an EmailSender.
type PasswordResetMailer struct {
	sender   adapter.EmailSender
	renderer *templates.Renderer
}

// NewPasswordResetMailer creates a new password reset mailer.
func NewPasswordResetMailer(sender adapter.EmailSender) (*PasswordResetMailer, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create template renderer: %w", err)
	}

	return &PasswordResetMailer{
		sender:   sender,
		renderer: renderer,
	}, nil
}

// SendPasswordResetEmail renders the password reset template and sends it.
func (m *PasswordResetMailer) SendPasswordResetEmail(ctx context.Context, input adapter.PasswordResetEmailInput) error {
	html, text, err := m.renderer.Render("password_reset", templates.PasswordResetData{
		UserName:  input.UserName,
		ResetURL:  input.ResetURL,
		ExpiresIn: input.ExpiresIn,
	})
	if err != nil {
		return fmt.Errorf("failed to render password reset email: %w", err)
	}

	_, err = m.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.UserEmail,
		Name:    input.UserName,
		Subject: passwordResetSubject,
		HTML:    html,
		Text:    text,
	})
	return err
}

var _ adapter.PasswordResetMailer = (*PasswordResetMailer)(nil)
