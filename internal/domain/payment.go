package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRequest describes an intended ticket purchase.
type PaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	TicketID    string          `json:"ticket_id"`
	UserID      string          `json:"user_id"`
	MethodToken string          `json:"method_token"`
	Description string          `json:"description,omitempty"`
}

// PaymentResult is the outcome of a processed payment.
type PaymentResult struct {
	PaymentID   string          `json:"payment_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	ProcessedAt time.Time       `json:"processed_at"`
}

// PaymentProcessor is the capability interface for payment gateways. Variants
// without a real integration must fail fast with ErrNotImplemented and must
// not be wired into request paths.
type PaymentProcessor interface {
	Provider() string
	ProcessPayment(ctx context.Context, req *PaymentRequest) (*PaymentResult, error)
	RefundPayment(ctx context.Context, paymentID string, amount decimal.Decimal) error
	ValidatePaymentMethod(ctx context.Context, methodToken string) (bool, error)
}
