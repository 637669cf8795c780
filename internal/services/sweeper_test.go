package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	service "github.com/aaravmahajanofficial/storefront/internal/services"
	serviceMocks "github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_Run(t *testing.T) {
	t.Run("Success - Sweeps on every tick until cancelled", func(t *testing.T) {
		// Arrange
		basket := serviceMocks.NewMockBasketService(t)
		ctx, cancel := context.WithCancel(t.Context())
		swept := make(chan struct{}, 2)

		basket.On("SweepStale", mock.Anything, 14).Return(int64(3), nil).Run(func(mock.Arguments) {
			swept <- struct{}{}
		}).Once()
		basket.On("SweepStale", mock.Anything, 14).Return(int64(0), errors.New("db down")).Run(func(mock.Arguments) {
			swept <- struct{}{}
			cancel()
		}).Once()

		done := make(chan struct{})

		// Act
		go func() {
			service.NewSweeper(basket, 14, 5*time.Millisecond).Run(ctx)
			close(done)
		}()

		// Assert
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper did not stop after cancel")
		}
		assert.Len(t, swept, 2)
	})

	t.Run("Success - Disabled interval returns immediately", func(t *testing.T) {
		// Arrange
		basket := serviceMocks.NewMockBasketService(t)

		// Act
		service.NewSweeper(basket, 14, 0).Run(t.Context())

		// Assert
		basket.AssertNotCalled(t, "SweepStale", mock.Anything, mock.Anything)
	})
}
