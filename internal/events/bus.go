package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

const DefaultTimeout = 2 * time.Second

// Subscriber reacts to a basket mutation. Returned errors are logged and never
// reach the caller that triggered the mutation.
type Subscriber func(ctx context.Context, event models.BasketModified) error

type Publisher interface {
	Publish(ctx context.Context, event models.BasketModified)
}

type subscription struct {
	name string
	fn   Subscriber
}

// Bus delivers basket modified events synchronously to every subscriber, in
// subscription order, before Publish returns.
type Bus struct {
	mu          sync.RWMutex
	subscribers []subscription
	timeout     time.Duration
}

func NewBus(timeout time.Duration) *Bus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Bus{timeout: timeout}
}

func (b *Bus) Subscribe(name string, fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = append(b.subscribers, subscription{name: name, fn: fn})
}

func (b *Bus) Publish(ctx context.Context, event models.BasketModified) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	subscribers := make([]subscription, len(b.subscribers))
	copy(subscribers, b.subscribers)
	b.mu.RUnlock()

	logger := middleware.LoggerFromContext(ctx)

	for _, sub := range subscribers {
		if err := b.deliver(ctx, sub, event); err != nil {
			logger.Warn("Basket event subscriber failed",
				slog.String("subscriber", sub.name),
				slog.String("basketId", event.BasketID),
				slog.String("action", string(event.Action)),
				slog.String("error", err.Error()))
		}
	}
}

// deliver waits for the subscriber at most b.timeout. A subscriber that ignores
// its context keeps running in the background but no longer holds up the caller.
func (b *Bus) deliver(ctx context.Context, sub subscription, event models.BasketModified) error {

	subCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("subscriber panicked: %v", r)
			}
		}()

		done <- sub.fn(subCtx, event)
	}()

	select {
	case err := <-done:
		return err
	case <-subCtx.Done():
		return fmt.Errorf("subscriber timed out after %s", b.timeout)
	}
}
