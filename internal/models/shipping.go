package models

import "github.com/shopspring/decimal"

type ShippingRateResponse struct {
	CountryCode string          `json:"country_code"`
	Name        string          `json:"name"`
	Rate        decimal.Decimal `json:"rate"`
	Description string          `json:"description,omitempty"`
	Configured  bool            `json:"configured"`
}

type StoreConfigResponse struct {
	Currency         string `json:"currency"`
	CurrencyHTMLCode string `json:"currency_html_code"`
	StripeKey        string `json:"stripe_key,omitempty"`
}
