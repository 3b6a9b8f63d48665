package services

import (
	"context"
	"fmt"
	"log"

	"hdtickets/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendAlertTriggered sends the price-alert notification using the "alert_triggered" template.
func (s *emailService) SendAlertTriggered(ctx context.Context, data *domain.AlertTriggeredEmailData) error {
	if data == nil {
		return fmt.Errorf("alert triggered data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("alert_triggered", data)
	if err != nil {
		return fmt.Errorf("render alert_triggered template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send alert email: %w", err)
	}
	log.Printf("[EMAIL] Alert notification sent to %s", data.Email)
	return nil
}

// SendWelcomeMessage sends a welcome email using the "welcome" template and the given data.
func (s *emailService) SendWelcomeMessage(ctx context.Context, data *domain.WelcomeMessageEmailData) error {
	if data == nil {
		return fmt.Errorf("welcome message data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("welcome", data)
	if err != nil {
		return fmt.Errorf("render welcome template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("send welcome email: %w", err)
	}
	log.Printf("[EMAIL] Welcome email sent to %s", data.Email)
	return nil
}
