package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

type BasketRepository interface {
	AddOrIncrement(ctx context.Context, basketID string, variantID int64, quantity int) (*models.BasketItem, bool, error)
	IncreaseQuantity(ctx context.Context, itemID int64, by int) (int, error)
	DecreaseQuantity(ctx context.Context, itemID int64, by int) (int, error)
	GetByVariant(ctx context.Context, basketID string, variantID int64) (*models.BasketItem, error)
	ListByBasket(ctx context.Context, basketID string) ([]*models.BasketItem, error)
	CountItems(ctx context.Context, basketID string) (int, error)
	Remove(ctx context.Context, basketID string, variantID int64) (*models.BasketItem, error)
	ClearBasket(ctx context.Context, basketID string) (int64, error)
	DeleteStale(ctx context.Context, cutoff time.Time) (int64, error)
}

type basketRepository struct {
	DB *sql.DB
}

func NewBasketRepo(db *sql.DB) BasketRepository {
	return &basketRepository{DB: db}
}

// AddOrIncrement inserts the (basket, variant) row or adds quantity to the existing one
// in a single statement. The boolean reports whether a new row was created.
func (r *basketRepository) AddOrIncrement(ctx context.Context, basketID string, variantID int64, quantity int) (*models.BasketItem, bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO basket_items (basket_id, variant_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (basket_id, variant_id)
		DO UPDATE SET quantity = basket_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at, (xmax = 0) AS inserted
	`

	item := &models.BasketItem{BasketID: basketID, VariantID: variantID}

	var inserted bool

	err := r.DB.QueryRowContext(dbCtx, query, basketID, variantID, quantity).Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert basket item: %w", err)
	}

	return item, inserted, nil
}

func (r *basketRepository) IncreaseQuantity(ctx context.Context, itemID int64, by int) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE basket_items
		SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING quantity
	`

	var quantity int

	if err := r.DB.QueryRowContext(dbCtx, query, by, itemID).Scan(&quantity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to increase quantity: %w", err)
	}

	return quantity, nil
}

// DecreaseQuantity locks the row, then either lowers the quantity or deletes the
// row when nothing would be left. It returns 0 when the row was deleted.
func (r *basketRepository) DecreaseQuantity(ctx context.Context, itemID int64, by int) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var current int

	err = tx.QueryRowContext(dbCtx, `SELECT quantity FROM basket_items WHERE id = $1 FOR UPDATE`, itemID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to lock basket item: %w", err)
	}

	remaining := current - by

	if remaining <= 0 {
		if _, err := tx.ExecContext(dbCtx, `DELETE FROM basket_items WHERE id = $1`, itemID); err != nil {
			return 0, fmt.Errorf("failed to delete basket item: %w", err)
		}
		remaining = 0
	} else {
		if _, err := tx.ExecContext(dbCtx, `UPDATE basket_items SET quantity = $1, updated_at = NOW() WHERE id = $2`, remaining, itemID); err != nil {
			return 0, fmt.Errorf("failed to decrease quantity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return remaining, nil
}

func (r *basketRepository) GetByVariant(ctx context.Context, basketID string, variantID int64) (*models.BasketItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, quantity, created_at, updated_at
		FROM basket_items
		WHERE basket_id = $1 AND variant_id = $2
	`

	item := &models.BasketItem{BasketID: basketID, VariantID: variantID}

	err := r.DB.QueryRowContext(dbCtx, query, basketID, variantID).Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *basketRepository) ListByBasket(ctx context.Context, basketID string) ([]*models.BasketItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT bi.id, bi.variant_id, bi.quantity, bi.created_at, bi.updated_at,
		       v.product_id, v.sku, v.description, v.price, v.stock
		FROM basket_items bi
		JOIN product_variants v ON v.id = bi.variant_id
		WHERE bi.basket_id = $1
		ORDER BY bi.created_at, bi.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, basketID)
	if err != nil {
		return nil, fmt.Errorf("failed to list basket items: %w", err)
	}
	defer rows.Close()

	items := []*models.BasketItem{}

	for rows.Next() {
		item := &models.BasketItem{BasketID: basketID, Variant: &models.ProductVariant{}}

		err := rows.Scan(&item.ID, &item.VariantID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&item.Variant.ProductID, &item.Variant.SKU, &item.Variant.Description, &item.Variant.Price, &item.Variant.Stock)
		if err != nil {
			return nil, fmt.Errorf("failed to scan basket item: %w", err)
		}

		item.Variant.ID = item.VariantID
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate basket items: %w", err)
	}

	return items, nil
}

func (r *basketRepository) CountItems(ctx context.Context, basketID string) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	err := r.DB.QueryRowContext(dbCtx, `SELECT COALESCE(SUM(quantity), 0) FROM basket_items WHERE basket_id = $1`, basketID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count basket items: %w", err)
	}

	return total, nil
}

// Remove deletes the row for the variant and returns it, or nil when there was none.
func (r *basketRepository) Remove(ctx context.Context, basketID string, variantID int64) (*models.BasketItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		DELETE FROM basket_items
		WHERE basket_id = $1 AND variant_id = $2
		RETURNING id, quantity, created_at, updated_at
	`

	item := &models.BasketItem{BasketID: basketID, VariantID: variantID}

	err := r.DB.QueryRowContext(dbCtx, query, basketID, variantID).Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to remove basket item: %w", err)
	}

	return item, nil
}

func (r *basketRepository) ClearBasket(ctx context.Context, basketID string) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM basket_items WHERE basket_id = $1`, basketID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear basket: %w", err)
	}

	return result.RowsAffected()
}

// DeleteStale removes every item of baskets whose most recent activity is older than cutoff.
func (r *basketRepository) DeleteStale(ctx context.Context, cutoff time.Time) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		DELETE FROM basket_items
		WHERE basket_id IN (
			SELECT basket_id
			FROM basket_items
			GROUP BY basket_id
			HAVING MAX(updated_at) < $1
		)
	`

	result, err := r.DB.ExecContext(dbCtx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale baskets: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get deleted rows: %w", err)
	}

	return deleted, nil
}
