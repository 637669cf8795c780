package health

import (
	"errors"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	stripeMocks "github.com/aaravmahajanofficial/storefront/pkg/stripe/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStripeCheck(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		client.On("Ping", mock.Anything).Return(nil).Once()

		// Act
		err := stripeCheck(client)(t.Context())

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Failure - Stripe unreachable", func(t *testing.T) {
		// Arrange
		client := stripeMocks.NewMockClient(t)
		client.On("Ping", mock.Anything).Return(errors.New("invalid api key")).Once()

		// Act
		err := stripeCheck(client)(t.Context())

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to connect to stripe")
	})
}

func TestNewHealthHandler(t *testing.T) {
	cfg := &config.Config{
		Database:     config.Database{Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "db", SSLMode: "disable"},
		RedisConnect: config.RedisConnect{Host: "localhost", Port: "6379"},
	}

	h, err := NewHealthHandler(cfg, &Endpoints{})

	require.NoError(t, err)
	assert.NotNil(t, h.Handler())
}
