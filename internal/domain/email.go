package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AlertTriggeredEmailData holds data for the alert notification email.
type AlertTriggeredEmailData struct {
	Email     string
	EventName string
	Platform  string
	Price     decimal.Decimal
	MaxPrice  decimal.Decimal
}

// WelcomeMessageEmailData holds data for the welcome email.
type WelcomeMessageEmailData struct {
	Email string
	Name  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendAlertTriggered(ctx context.Context, data *AlertTriggeredEmailData) error
	SendWelcomeMessage(ctx context.Context, data *WelcomeMessageEmailData) error
}
