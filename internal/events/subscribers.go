package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
)

// InvalidateBasketCache drops the cached item list of the modified basket.
func InvalidateBasketCache(c cache.Cache) Subscriber {
	return func(ctx context.Context, event models.BasketModified) error {
		if err := c.Delete(ctx, cache.Key(cache.BasketKeyPrefix, event.BasketID)); err != nil {
			return fmt.Errorf("failed to invalidate basket %s: %w", event.BasketID, err)
		}

		return nil
	}
}

func CountModifications() Subscriber {
	return func(_ context.Context, event models.BasketModified) error {
		metrics.RecordBasketModification(string(event.Action))
		return nil
	}
}

func LogModifications() Subscriber {
	return func(ctx context.Context, event models.BasketModified) error {
		attrs := []any{
			slog.String("basketId", event.BasketID),
			slog.String("action", string(event.Action)),
		}
		if event.Item != nil {
			attrs = append(attrs, slog.Int64("variantId", event.Item.VariantID), slog.Int("quantity", event.Item.Quantity))
		}

		middleware.LoggerFromContext(ctx).Debug("Basket modified", attrs...)

		return nil
	}
}
