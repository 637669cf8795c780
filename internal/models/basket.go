package models

import (
	"time"
)

// BasketItem is one line of a basket. Quantity is always >= 1 while the row exists.
type BasketItem struct {
	ID        int64           `json:"id"`
	BasketID  string          `json:"basket_id"`
	VariantID int64           `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	Variant   *ProductVariant `json:"variant,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// VariantID is a pointer so a missing field can be told apart from zero.
type AddBasketItemRequest struct {
	VariantID *int64 `json:"variant_id" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type QuantityAction string

const (
	QuantityIncrease QuantityAction = "increase"
	QuantityDecrease QuantityAction = "decrease"
)

type UpdateBasketItemRequest struct {
	Action QuantityAction `json:"action" validate:"required,oneof=increase decrease"`
	By     int            `json:"by" validate:"omitempty,min=1"`
}

type QuantityResponse struct {
	Quantity int `json:"quantity"`
}

type SweepResult struct {
	Deleted int64 `json:"deleted"`
}

type BasketAction string

const (
	BasketActionAdded     BasketAction = "added"
	BasketActionIncreased BasketAction = "increased"
	BasketActionDecreased BasketAction = "decreased"
	BasketActionRemoved   BasketAction = "removed"
	BasketActionCleared   BasketAction = "cleared"
)

// BasketModified is published once per successful basket mutation.
// Item is nil when a whole basket was cleared.
type BasketModified struct {
	BasketID string       `json:"basket_id"`
	Item     *BasketItem  `json:"item,omitempty"`
	Action   BasketAction `json:"action"`
	At       time.Time    `json:"at"`
}
