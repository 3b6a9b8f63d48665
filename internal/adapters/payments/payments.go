package payments

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"hdtickets/internal/domain"
)

// Config holds configuration for creating a payment processor.
type Config struct {
	Provider     string
	StripeAPIKey string
	PayPalID     string
	PayPalSecret string
}

// NewProcessor creates a payment processor from config. Neither gateway has a
// live integration yet; both fail fast with ErrNotImplemented so callers never
// mistake them for a working payment path. Unknown providers fall back to stripe.
func NewProcessor(config Config) domain.PaymentProcessor {
	switch config.Provider {
	case "stripe":
		return &stripeProcessor{apiKey: config.StripeAPIKey}
	case "paypal":
		return &paypalProcessor{clientID: config.PayPalID, secret: config.PayPalSecret}
	default:
		log.Printf("[PAYMENTS] Unknown payment provider %q, using stripe", config.Provider)
		return &stripeProcessor{apiKey: config.StripeAPIKey}
	}
}

type stripeProcessor struct {
	apiKey string
}

func (p *stripeProcessor) Provider() string { return "stripe" }

func (p *stripeProcessor) ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResult, error) {
	return nil, domain.ErrNotImplemented
}

func (p *stripeProcessor) RefundPayment(ctx context.Context, paymentID string, amount decimal.Decimal) error {
	return domain.ErrNotImplemented
}

func (p *stripeProcessor) ValidatePaymentMethod(ctx context.Context, methodToken string) (bool, error) {
	return false, domain.ErrNotImplemented
}

type paypalProcessor struct {
	clientID string
	secret   string
}

func (p *paypalProcessor) Provider() string { return "paypal" }

func (p *paypalProcessor) ProcessPayment(ctx context.Context, req *domain.PaymentRequest) (*domain.PaymentResult, error) {
	return nil, domain.ErrNotImplemented
}

func (p *paypalProcessor) RefundPayment(ctx context.Context, paymentID string, amount decimal.Decimal) error {
	return domain.ErrNotImplemented
}

func (p *paypalProcessor) ValidatePaymentMethod(ctx context.Context, methodToken string) (bool, error) {
	return false, domain.ErrNotImplemented
}
