package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish(t *testing.T) {
	event := models.BasketModified{
		BasketID: "basket-1",
		Item:     &models.BasketItem{ID: 7, BasketID: "basket-1", VariantID: 3, Quantity: 2},
		Action:   models.BasketActionAdded,
	}

	t.Run("Success - Every subscriber receives the event once", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(time.Second)
		var first, second []models.BasketModified

		bus.Subscribe("first", func(_ context.Context, e models.BasketModified) error {
			first = append(first, e)
			return nil
		})
		bus.Subscribe("second", func(_ context.Context, e models.BasketModified) error {
			second = append(second, e)
			return nil
		})

		// Act
		bus.Publish(t.Context(), event)

		// Assert
		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, "basket-1", first[0].BasketID)
		assert.Equal(t, int64(7), first[0].Item.ID)
		assert.False(t, first[0].At.IsZero(), "publish should stamp the event time")
	})

	t.Run("Success - Failing subscriber does not stop delivery", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(time.Second)
		delivered := false

		bus.Subscribe("broken", func(context.Context, models.BasketModified) error {
			return errors.New("cache unavailable")
		})
		bus.Subscribe("panicky", func(context.Context, models.BasketModified) error {
			panic("boom")
		})
		bus.Subscribe("healthy", func(context.Context, models.BasketModified) error {
			delivered = true
			return nil
		})

		// Act
		assert.NotPanics(t, func() { bus.Publish(t.Context(), event) })

		// Assert
		assert.True(t, delivered)
	})

	t.Run("Success - Slow subscriber is abandoned after the timeout", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(20 * time.Millisecond)
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })

		bus.Subscribe("stuck", func(context.Context, models.BasketModified) error {
			<-release
			return nil
		})

		// Act
		start := time.Now()
		bus.Publish(t.Context(), event)

		// Assert
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Success - Cancelled request still delivers", func(t *testing.T) {
		// Arrange
		bus := events.NewBus(time.Second)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		var got error
		bus.Subscribe("ctx", func(ctx context.Context, _ models.BasketModified) error {
			got = ctx.Err()
			return nil
		})

		// Act
		bus.Publish(ctx, event)

		// Assert
		assert.NoError(t, got)
	})
}
