package payments_test

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/payments"
	stripeMocks "github.com/aaravmahajanofficial/storefront/pkg/stripe/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount   string
		expected int64
	}{
		{"10.001", 1001},
		{"10.00", 1000},
		{"0.01", 1},
		{"19.999", 2000},
		{"0", 0},
		{"1234.5", 123450},
	}

	for _, tc := range tests {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.expected, payments.MinorUnits(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestStripeGateway_CreatePayment(t *testing.T) {
	t.Run("Success - Charges minor units rounded up", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")

		client.On("CreateCharge", mock.Anything, int64(1001), "gbp", "tok_visa", "Order 42").
			Return(&stripe.Charge{ID: "ch_123"}, nil).Once()

		// Act
		chargeID, err := gateway.CreatePayment(t.Context(), decimal.RequireFromString("10.001"), "tok_visa", "Order 42")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "ch_123", chargeID)
	})

	t.Run("Success - Description is sanitized", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")

		client.On("CreateCharge", mock.Anything, int64(500), "gbp", "tok_visa", "Order 7").
			Return(&stripe.Charge{ID: "ch_7"}, nil).Once()

		// Act
		_, err := gateway.CreatePayment(t.Context(), decimal.NewFromInt(5), "tok_visa", "<b>Order 7</b><script>x()</script>")

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Card declined becomes PaymentError", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")
		declined := &stripe.Error{Type: stripe.ErrorTypeCard, Msg: "Your card was declined."}

		client.On("CreateCharge", mock.Anything, int64(1000), "gbp", "tok_declined", "Order 1").
			Return(nil, declined).Once()

		// Act
		chargeID, err := gateway.CreatePayment(t.Context(), decimal.NewFromInt(10), "tok_declined", "Order 1")

		// Assert
		require.Error(t, err)
		assert.Empty(t, chargeID)

		var paymentErr *payments.PaymentError
		require.ErrorAs(t, err, &paymentErr)
		assert.Equal(t, "Your card was declined.", paymentErr.Message)
		assert.ErrorIs(t, err, declined)
	})

	t.Run("Failure - Transport error is not a decline", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")
		timeout := errors.New("dial tcp: i/o timeout")

		client.On("CreateCharge", mock.Anything, int64(1000), "gbp", "tok_visa", "Order 1").
			Return(nil, timeout).Once()

		// Act
		chargeID, err := gateway.CreatePayment(t.Context(), decimal.NewFromInt(10), "tok_visa", "Order 1")

		// Assert
		require.ErrorIs(t, err, timeout)
		assert.Empty(t, chargeID)

		var paymentErr *payments.PaymentError
		assert.False(t, errors.As(err, &paymentErr))
	})

	t.Run("Failure - Stripe API error is not a decline", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")
		apiErr := &stripe.Error{Type: stripe.ErrorTypeAPI, Msg: "An unexpected error occurred."}

		client.On("CreateCharge", mock.Anything, int64(1000), "gbp", "tok_visa", "Order 1").
			Return(nil, apiErr).Once()

		// Act
		_, err := gateway.CreatePayment(t.Context(), decimal.NewFromInt(10), "tok_visa", "Order 1")

		// Assert
		require.ErrorIs(t, err, apiErr)

		var paymentErr *payments.PaymentError
		assert.False(t, errors.As(err, &paymentErr))
	})
}

func TestStripeGateway_GetToken(t *testing.T) {
	card := models.CardDetails{Number: "4242424242424242", ExpMonth: "12", ExpYear: "2030", CVC: "123"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")

		client.On("CreateCardToken", mock.Anything, card.Number, card.ExpMonth, card.ExpYear, card.CVC).
			Return(&stripe.Token{ID: "tok_123"}, nil).Once()

		// Act
		token, err := gateway.GetToken(t.Context(), card)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "tok_123", token)
	})

	t.Run("Failure - Gateway error", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")
		gatewayErr := errors.New("invalid number")

		client.On("CreateCardToken", mock.Anything, card.Number, card.ExpMonth, card.ExpYear, card.CVC).
			Return(nil, gatewayErr).Once()

		// Act
		_, err := gateway.GetToken(t.Context(), card)

		// Assert
		require.ErrorIs(t, err, gatewayErr)
	})
}

func TestStripeGateway_IssueRefund(t *testing.T) {
	tests := []struct {
		name     string
		status   stripe.RefundStatus
		expected bool
	}{
		{"Success - Succeeded", stripe.RefundStatusSucceeded, true},
		{"Not accepted - Pending", stripe.RefundStatusPending, false},
		{"Not accepted - Failed", stripe.RefundStatusFailed, false},
		{"Not accepted - Canceled", stripe.RefundStatusCanceled, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			client := stripeMocks.NewMockClient(t)
			gateway := payments.NewStripeGateway(client, "gbp")

			client.On("CreateRefund", mock.Anything, "ch_123", int64(3698)).
				Return(&stripe.Refund{ID: "re_1", Status: tc.status}, nil).Once()

			// Act
			refunded, err := gateway.IssueRefund(t.Context(), "ch_123", decimal.RequireFromString("36.98"))

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tc.expected, refunded)
		})
	}

	t.Run("Failure - Transport error", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		gateway := payments.NewStripeGateway(client, "gbp")

		client.On("CreateRefund", mock.Anything, "ch_123", int64(100)).Return(nil, errors.New("timeout")).Once()

		// Act
		refunded, err := gateway.IssueRefund(t.Context(), "ch_123", decimal.NewFromInt(1))

		// Assert
		require.Error(t, err)
		assert.False(t, refunded)
	})
}

func TestDummyGateway(t *testing.T) {
	gateway := payments.NewDummyGateway()

	chargeID, err := gateway.CreatePayment(t.Context(), decimal.NewFromInt(10), "tok", "Order")
	require.NoError(t, err)
	assert.Contains(t, chargeID, "dummy_")

	token, err := gateway.GetToken(t.Context(), models.CardDetails{})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	refunded, err := gateway.IssueRefund(t.Context(), chargeID, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, refunded)
}

func TestNewGateway(t *testing.T) {
	t.Run("Success - Stripe", func(t *testing.T) {
		cfg := &config.Config{Payment: config.Payment{Gateway: config.GatewayStripe, StripeAPIKey: "sk_test"}, Store: config.Store{Currency: "GBP"}}

		gateway, err := payments.NewGateway(cfg)

		require.NoError(t, err)
		assert.IsType(t, &payments.StripeGateway{}, gateway)
	})

	t.Run("Success - Dummy", func(t *testing.T) {
		cfg := &config.Config{Payment: config.Payment{Gateway: config.GatewayDummy}}

		gateway, err := payments.NewGateway(cfg)

		require.NoError(t, err)
		assert.IsType(t, &payments.DummyGateway{}, gateway)
	})

	t.Run("Failure - Unknown", func(t *testing.T) {
		cfg := &config.Config{Payment: config.Payment{Gateway: "paypal"}}

		gateway, err := payments.NewGateway(cfg)

		require.Error(t, err)
		assert.Nil(t, gateway)
	})
}
