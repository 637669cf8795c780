package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

type BasketService interface {
	List(ctx context.Context, basketID string) ([]*models.BasketItem, error)
	ListFromStore(ctx context.Context, basketID string) ([]*models.BasketItem, error)
	TotalItems(ctx context.Context, basketID string) (int, error)
	ItemCount(ctx context.Context, basketID string, variantID int64) (int, error)
	AddOrIncrement(ctx context.Context, basketID string, variantID int64, quantity int) (*models.BasketItem, error)
	IncreaseQuantity(ctx context.Context, item *models.BasketItem, by int) (int, error)
	DecreaseQuantity(ctx context.Context, item *models.BasketItem, by int) (int, error)
	UpdateQuantity(ctx context.Context, basketID string, variantID int64, action models.QuantityAction, by int) (int, error)
	Remove(ctx context.Context, basketID string, variantID int64) error
	Clear(ctx context.Context, basketID string) error
	SweepStale(ctx context.Context, olderThanDays int) (int64, error)
}

type basketService struct {
	baskets   repository.BasketRepository
	variants  repository.VariantRepository
	cache     cache.Cache
	publisher events.Publisher
	now       func() time.Time
}

func NewBasketService(baskets repository.BasketRepository, variants repository.VariantRepository, basketCache cache.Cache, publisher events.Publisher) BasketService {
	return &basketService{
		baskets:   baskets,
		variants:  variants,
		cache:     basketCache,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *basketService) List(ctx context.Context, basketID string) ([]*models.BasketItem, error) {
	items, err := cache.Fetch(ctx, s.cache, cache.Key(cache.BasketKeyPrefix, basketID), 0, func(ctx context.Context) ([]*models.BasketItem, error) {
		return s.baskets.ListByBasket(ctx, basketID)
	})
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch basket").WithError(err)
	}

	return items, nil
}

// ListFromStore skips the cache. Anything that prices or charges the basket reads through here.
func (s *basketService) ListFromStore(ctx context.Context, basketID string) ([]*models.BasketItem, error) {
	items, err := s.baskets.ListByBasket(ctx, basketID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch basket").WithError(err)
	}

	return items, nil
}

func (s *basketService) TotalItems(ctx context.Context, basketID string) (int, error) {
	total, err := s.baskets.CountItems(ctx, basketID)
	if err != nil {
		return 0, errors.DatabaseError("Failed to count basket items").WithError(err)
	}

	return total, nil
}

// ItemCount is the quantity of one variant in the basket, 0 when it is not there.
func (s *basketService) ItemCount(ctx context.Context, basketID string, variantID int64) (int, error) {
	item, err := s.baskets.GetByVariant(ctx, basketID, variantID)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to fetch basket item").WithError(err)
	}

	return item.Quantity, nil
}

func (s *basketService) AddOrIncrement(ctx context.Context, basketID string, variantID int64, quantity int) (*models.BasketItem, error) {
	if quantity <= 0 {
		return nil, errors.ValidationError("Quantity must be at least 1")
	}

	variant, err := s.variants.GetByID(ctx, variantID)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError(fmt.Sprintf("Product variant %d not found", variantID)).WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product variant").WithError(err)
	}

	item, created, err := s.baskets.AddOrIncrement(ctx, basketID, variantID, quantity)
	if err != nil {
		return nil, errors.DatabaseError("Failed to add item to basket").WithError(err)
	}

	item.Variant = variant

	action := models.BasketActionIncreased
	if created {
		action = models.BasketActionAdded
	}

	s.publish(ctx, basketID, item, action)

	return item, nil
}

func (s *basketService) IncreaseQuantity(ctx context.Context, item *models.BasketItem, by int) (int, error) {
	if by <= 0 {
		return 0, errors.ValidationError("Quantity change must be at least 1")
	}

	quantity, err := s.baskets.IncreaseQuantity(ctx, item.ID, by)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return 0, errors.NotFoundError("Basket item not found").WithError(err)
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to increase quantity").WithError(err)
	}

	item.Quantity = quantity
	s.publish(ctx, item.BasketID, item, models.BasketActionIncreased)

	return quantity, nil
}

// DecreaseQuantity deletes the item when its quantity would drop to zero or below and returns 0.
func (s *basketService) DecreaseQuantity(ctx context.Context, item *models.BasketItem, by int) (int, error) {
	if by <= 0 {
		return 0, errors.ValidationError("Quantity change must be at least 1")
	}

	quantity, err := s.baskets.DecreaseQuantity(ctx, item.ID, by)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return 0, errors.NotFoundError("Basket item not found").WithError(err)
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to decrease quantity").WithError(err)
	}

	item.Quantity = quantity

	action := models.BasketActionDecreased
	if quantity == 0 {
		action = models.BasketActionRemoved
	}

	s.publish(ctx, item.BasketID, item, action)

	return quantity, nil
}

func (s *basketService) UpdateQuantity(ctx context.Context, basketID string, variantID int64, action models.QuantityAction, by int) (int, error) {
	item, err := s.baskets.GetByVariant(ctx, basketID, variantID)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return 0, errors.NotFoundError("Item is not in the basket").WithError(err)
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to fetch basket item").WithError(err)
	}

	switch action {
	case models.QuantityIncrease:
		return s.IncreaseQuantity(ctx, item, by)
	case models.QuantityDecrease:
		return s.DecreaseQuantity(ctx, item, by)
	default:
		return 0, errors.ValidationError(fmt.Sprintf("Unknown quantity action %q", action))
	}
}

// Remove is a no-op when the variant is not in the basket.
func (s *basketService) Remove(ctx context.Context, basketID string, variantID int64) error {
	item, err := s.baskets.Remove(ctx, basketID, variantID)
	if err != nil {
		return errors.DatabaseError("Failed to remove basket item").WithError(err)
	}

	if item == nil {
		middleware.LoggerFromContext(ctx).Debug("Nothing to remove", slog.String("basketId", basketID), slog.Int64("variantId", variantID))
		return nil
	}

	s.publish(ctx, basketID, item, models.BasketActionRemoved)

	return nil
}

func (s *basketService) Clear(ctx context.Context, basketID string) error {
	if _, err := s.baskets.ClearBasket(ctx, basketID); err != nil {
		return errors.DatabaseError("Failed to clear basket").WithError(err)
	}

	s.publish(ctx, basketID, nil, models.BasketActionCleared)

	return nil
}

// SweepStale deletes every basket untouched for olderThanDays days and returns the number of items removed.
func (s *basketService) SweepStale(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays < 0 {
		return 0, errors.ValidationError("Days must not be negative")
	}

	cutoff := s.now().AddDate(0, 0, -olderThanDays)

	deleted, err := s.baskets.DeleteStale(ctx, cutoff)
	if err != nil {
		return 0, errors.DatabaseError("Failed to delete stale baskets").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("Stale baskets swept", slog.Int("olderThanDays", olderThanDays), slog.Int64("deleted", deleted))

	return deleted, nil
}

func (s *basketService) publish(ctx context.Context, basketID string, item *models.BasketItem, action models.BasketAction) {
	s.publisher.Publish(ctx, models.BasketModified{
		BasketID: basketID,
		Item:     item,
		Action:   action,
	})
}
