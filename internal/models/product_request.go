package models

import "time"

// ProductRequest records that a customer wants to hear when a variant is available.
type ProductRequest struct {
	ID        int64     `json:"id"`
	VariantID int64     `json:"variant_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProductRequestRequest struct {
	VariantID int64  `json:"variant_id" validate:"required,gt=0"`
	Email     string `json:"email" validate:"required,email"`
}

type NotifyResult struct {
	Notified int `json:"notified"`
}

type EmailNotificationRequest struct {
	To          string
	Subject     string
	Content     string
	HTMLContent string
}
