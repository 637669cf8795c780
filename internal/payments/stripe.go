package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

type StripeGateway struct {
	client   stripe.Client
	currency string
	policy   *bluemonday.Policy
}

func NewStripeGateway(client stripe.Client, currency string) *StripeGateway {
	return &StripeGateway{client: client, currency: currency, policy: bluemonday.StrictPolicy()}
}

func (g *StripeGateway) CreatePayment(ctx context.Context, amount decimal.Decimal, token, description string) (string, error) {
	logger := middleware.LoggerFromContext(ctx)

	minor := MinorUnits(amount)

	charge, err := g.client.CreateCharge(ctx, minor, g.currency, token, g.policy.Sanitize(description))
	if err != nil {
		var stripeErr *stripe.Error
		if !errors.As(err, &stripeErr) || stripeErr.Type != stripe.ErrorTypeCard {
			logger.Error("Charge request failed", slog.Int64("amount", minor), slog.Any("error", err))
			return "", fmt.Errorf("failed to create charge: %w", err)
		}

		message := stripeErr.Msg
		if message == "" {
			message = "payment could not be processed"
		}

		logger.Warn("Charge declined by stripe", slog.Int64("amount", minor), slog.String("reason", message))
		return "", &PaymentError{Message: message, Err: err}
	}

	logger.Info("Charge created", slog.String("charge_id", charge.ID), slog.Int64("amount", minor))
	return charge.ID, nil
}

func (g *StripeGateway) GetToken(ctx context.Context, card models.CardDetails) (string, error) {
	token, err := g.client.CreateCardToken(ctx, card.Number, card.ExpMonth, card.ExpYear, card.CVC)
	if err != nil {
		return "", fmt.Errorf("failed to create card token: %w", err)
	}

	return token.ID, nil
}

func (g *StripeGateway) IssueRefund(ctx context.Context, chargeID string, amount decimal.Decimal) (bool, error) {
	refund, err := g.client.CreateRefund(ctx, chargeID, MinorUnits(amount))
	if err != nil {
		return false, fmt.Errorf("failed to create refund: %w", err)
	}

	if refund.Status != stripe.RefundStatusSucceeded {
		middleware.LoggerFromContext(ctx).Warn("Refund not accepted", slog.String("charge_id", chargeID), slog.String("status", string(refund.Status)))
		return false, nil
	}

	return true, nil
}
