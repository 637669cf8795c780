package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/charge"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/token"
)

type (
	Charge = stripe.Charge
	Refund = stripe.Refund
	Error  = stripe.Error
)

const (
	RefundStatusSucceeded = stripe.RefundStatusSucceeded
	ErrorTypeCard         = stripe.ErrorTypeCard
)

// Client is the slice of the Stripe API the storefront uses.
type Client interface {
	CreateCharge(ctx context.Context, amount int64, currency, source, description string) (*stripe.Charge, error)
	CreateCardToken(ctx context.Context, number, expMonth, expYear, cvc string) (*stripe.Token, error)
	CreateRefund(ctx context.Context, chargeID string, amount int64) (*stripe.Refund, error)
	Ping(ctx context.Context) error
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

func (s *stripeClient) CreateCharge(ctx context.Context, amount int64, currency, source, description string) (*stripe.Charge, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		Source:      &stripe.PaymentSourceSourceParams{Token: stripe.String(source)},
	}
	params.Context = ctx

	return charge.New(params)
}

func (s *stripeClient) CreateCardToken(ctx context.Context, number, expMonth, expYear, cvc string) (*stripe.Token, error) {
	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(number),
			ExpMonth: stripe.String(expMonth),
			ExpYear:  stripe.String(expYear),
			CVC:      stripe.String(cvc),
		},
	}
	params.Context = ctx

	return token.New(params)
}

func (s *stripeClient) CreateRefund(ctx context.Context, chargeID string, amount int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		Charge: stripe.String(chargeID),
		Amount: stripe.Int64(amount),
	}
	params.Context = ctx

	return refund.New(params)
}

// Ping reads the account balance, the cheapest authenticated call.
func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	_, err := balance.Get(params)

	return err
}
