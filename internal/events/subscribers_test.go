package events_test

import (
	"errors"
	"testing"

	cacheMocks "github.com/aaravmahajanofficial/storefront/internal/cache/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInvalidateBasketCache(t *testing.T) {
	event := models.BasketModified{BasketID: "basket-1", Action: models.BasketActionRemoved}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		c := cacheMocks.NewMockCache(t)
		c.On("Delete", mock.Anything, "cart:basket-1").Return(nil).Once()

		// Act
		err := events.InvalidateBasketCache(c)(t.Context(), event)

		// Assert
		require.NoError(t, err)
	})

	t.Run("Failure - Cache unavailable", func(t *testing.T) {
		// Arrange
		c := cacheMocks.NewMockCache(t)
		c.On("Delete", mock.Anything, "cart:basket-1").Return(errors.New("connection refused")).Once()

		// Act
		err := events.InvalidateBasketCache(c)(t.Context(), event)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "basket-1")
	})
}

func TestLogAndCountModifications(t *testing.T) {
	event := models.BasketModified{
		BasketID: "basket-1",
		Item:     &models.BasketItem{VariantID: 7, Quantity: 2},
		Action:   models.BasketActionAdded,
	}

	assert.NoError(t, events.CountModifications()(t.Context(), event))
	assert.NoError(t, events.LogModifications()(t.Context(), event))
	assert.NoError(t, events.LogModifications()(t.Context(), models.BasketModified{BasketID: "basket-1", Action: models.BasketActionCleared}))
}
