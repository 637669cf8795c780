package models

import "github.com/shopspring/decimal"

type ProductVariant struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}
