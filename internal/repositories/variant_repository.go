package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
)

// VariantRepository is the read-only view of the catalogue the basket needs.
type VariantRepository interface {
	GetByID(ctx context.Context, id int64) (*models.ProductVariant, error)
}

type variantRepository struct {
	DB *sql.DB
}

func NewVariantRepo(db *sql.DB) VariantRepository {
	return &variantRepository{DB: db}
}

func (r *variantRepository) GetByID(ctx context.Context, id int64) (*models.ProductVariant, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, product_id, sku, description, price, stock
		FROM product_variants
		WHERE id = $1
	`

	variant := &models.ProductVariant{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&variant.ID, &variant.ProductID, &variant.SKU, &variant.Description, &variant.Price, &variant.Stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return variant, nil
}
