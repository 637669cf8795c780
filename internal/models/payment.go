package models

// CardDetails are forwarded to the gateway for tokenisation and never stored.
type CardDetails struct {
	Number   string `json:"number" validate:"required"`
	ExpMonth string `json:"exp_month" validate:"required"`
	ExpYear  string `json:"exp_year" validate:"required"`
	CVC      string `json:"cvc" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type RefundResponse struct {
	Refunded bool   `json:"refunded"`
	Order    *Order `json:"order"`
}
