package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "SUBMITTED"
	OrderStatusFulfilled OrderStatus = "FULFILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
	OrderStatusFailure   OrderStatus = "FAILURE"
)

type Address struct {
	Name       string `json:"name" validate:"required"`
	Line1      string `json:"line_1" validate:"required"`
	Line2      string `json:"line_2"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
}

type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	VariantID int64           `json:"variant_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID              int64           `json:"id"`
	Status          OrderStatus     `json:"status"`
	Email           string          `json:"email"`
	IPAddress       string          `json:"ip_address,omitempty"`
	ShippingAddress *Address        `json:"shipping_address"`
	ShippingOption  string          `json:"shipping_option"`
	ShippingRate    decimal.Decimal `json:"shipping_rate"`
	TransactionID   string          `json:"transaction_id,omitempty"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Subtotal is the sum of the item lines without shipping.
func (o *Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Total())
	}
	return total
}

func (o *Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.ShippingRate)
}

type CheckoutRequest struct {
	Token           string  `json:"token" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	ShippingAddress Address `json:"shipping_address" validate:"required"`
	ShippingOption  string  `json:"shipping_option" validate:"required"`
}

type CheckoutResponse struct {
	Order *Order          `json:"order"`
	Total decimal.Decimal `json:"total"`
}
