package payments

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DummyGateway accepts everything. Use it only for local development.
type DummyGateway struct{}

func NewDummyGateway() *DummyGateway {
	return &DummyGateway{}
}

func (DummyGateway) CreatePayment(context.Context, decimal.Decimal, string, string) (string, error) {
	return "dummy_" + uuid.NewString(), nil
}

func (DummyGateway) GetToken(context.Context, models.CardDetails) (string, error) {
	return "tok_dummy_" + uuid.NewString(), nil
}

func (DummyGateway) IssueRefund(context.Context, string, decimal.Decimal) (bool, error) {
	return true, nil
}
