// Package payments charges customers through a configurable gateway.
package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/shopspring/decimal"
)

// Gateway is the contract every payment backend satisfies.
type Gateway interface {
	// CreatePayment charges amount against a previously issued token and returns the gateway charge id.
	// A rejected charge is reported as *PaymentError.
	CreatePayment(ctx context.Context, amount decimal.Decimal, token, description string) (string, error)
	GetToken(ctx context.Context, card models.CardDetails) (string, error)
	// IssueRefund reports true only when the gateway confirms the refund succeeded.
	IssueRefund(ctx context.Context, chargeID string, amount decimal.Decimal) (bool, error)
}

// PaymentError is a charge the gateway declined or could not process.
type PaymentError struct {
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	return e.Message
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit amount to the smallest currency unit, rounding up:
// 10.001 becomes 1001.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Ceil().IntPart()
}

// NewGateway builds the gateway selected by cfg.Payment.Gateway.
func NewGateway(cfg *config.Config) (Gateway, error) {
	currency := strings.ToLower(cfg.Store.Currency)

	switch cfg.Payment.Gateway {
	case config.GatewayStripe:
		return NewStripeGateway(stripe.NewStripeClient(cfg.Payment.StripeAPIKey), currency), nil
	case config.GatewayDummy:
		return NewDummyGateway(), nil
	default:
		return nil, fmt.Errorf("unknown payment gateway %q", cfg.Payment.Gateway)
	}
}
