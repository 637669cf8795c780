package service

import (
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/shopspring/decimal"
)

type ShippingService interface {
	// Rate is the configured price for (country, option), zero when the pair is not configured.
	Rate(countryCode, option string) decimal.Decimal
	Lookup(countryCode, option string) (models.ShippingRateResponse, bool)
	Options(countryCode string) []models.ShippingRateResponse
	StoreConfig() models.StoreConfigResponse
}

type shippingService struct {
	store          config.Store
	publishableKey string
}

func NewShippingService(store config.Store, publishableKey string) ShippingService {
	return &shippingService{store: store, publishableKey: publishableKey}
}

func (s *shippingService) Rate(countryCode, option string) decimal.Decimal {
	rate, _ := s.Lookup(countryCode, option)
	return rate.Rate
}

// Lookup falls back to the store default rate when default shipping is enabled.
func (s *shippingService) Lookup(countryCode, option string) (models.ShippingRateResponse, bool) {
	for _, rate := range s.store.ShippingRates {
		if strings.EqualFold(rate.CountryCode, countryCode) && rate.Name == option {
			return toRateResponse(rate), true
		}
	}

	if s.store.DefaultShippingEnabled {
		return models.ShippingRateResponse{
			CountryCode: strings.ToUpper(countryCode),
			Name:        option,
			Rate:        s.store.DefaultRate(),
			Description: s.store.DefaultShippingCarrier,
			Configured:  true,
		}, true
	}

	return models.ShippingRateResponse{
		CountryCode: strings.ToUpper(countryCode),
		Name:        option,
		Rate:        decimal.Zero,
	}, false
}

func (s *shippingService) Options(countryCode string) []models.ShippingRateResponse {
	options := []models.ShippingRateResponse{}

	for _, rate := range s.store.ShippingRates {
		if strings.EqualFold(rate.CountryCode, countryCode) {
			options = append(options, toRateResponse(rate))
		}
	}

	return options
}

func (s *shippingService) StoreConfig() models.StoreConfigResponse {
	return models.StoreConfigResponse{
		Currency:         s.store.Currency,
		CurrencyHTMLCode: s.store.CurrencyHTMLCode,
		StripeKey:        s.publishableKey,
	}
}

func toRateResponse(rate config.ShippingRate) models.ShippingRateResponse {
	return models.ShippingRateResponse{
		CountryCode: strings.ToUpper(rate.CountryCode),
		Name:        rate.Name,
		Rate:        rate.Amount(),
		Description: rate.Description,
		Configured:  true,
	}
}
