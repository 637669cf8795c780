package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

type ShippingHandler struct {
	shippingService service.ShippingService
}

func NewShippingHandler(shippingService service.ShippingService) *ShippingHandler {
	return &ShippingHandler{shippingService: shippingService}
}

// GetRate godoc
//
//	@Summary		Shipping rate for a country and option
//	@Description	Unconfigured pairs report a zero rate with configured=false.
//	@Tags			Shipping
//	@Produce		json
//	@Param			country_code	query		string														true	"ISO 3166-1 alpha-2 country code"
//	@Param			name			query		string														true	"Shipping option name"
//	@Success		200				{object}	response.APIResponse{data=models.ShippingRateResponse}	"Shipping rate"
//	@Failure		400				{object}	response.ErrorResponse										"Missing query parameter"
//	@Router			/shipping/rate/ [get]
func (h *ShippingHandler) GetRate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		countryCode := strings.TrimSpace(r.URL.Query().Get("country_code"))
		name := strings.TrimSpace(r.URL.Query().Get("name"))

		if countryCode == "" || name == "" {
			response.Error(w, errors.BadRequestError("country_code and name are required"))
			return
		}

		rate, found := h.shippingService.Lookup(countryCode, name)
		if !found {
			middleware.LoggerFromContext(r.Context()).Info("No shipping rate configured",
				slog.String("countryCode", countryCode),
				slog.String("name", name))
		}

		response.Success(w, http.StatusOK, rate)
	}
}

// ListOptions godoc
//
//	@Summary	Shipping options configured for a country
//	@Tags		Shipping
//	@Produce	json
//	@Param		country_code	query		string															true	"ISO 3166-1 alpha-2 country code"
//	@Success	200				{object}	response.APIResponse{data=[]models.ShippingRateResponse}	"Shipping options"
//	@Failure	400				{object}	response.ErrorResponse											"Missing country_code"
//	@Router		/shipping/options/ [get]
func (h *ShippingHandler) ListOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		countryCode := strings.TrimSpace(r.URL.Query().Get("country_code"))
		if countryCode == "" {
			response.Error(w, errors.BadRequestError("country_code is required"))
			return
		}

		response.Success(w, http.StatusOK, h.shippingService.Options(countryCode))
	}
}

// GetConfig godoc
//
//	@Summary	Store configuration for clients
//	@Tags		Store
//	@Produce	json
//	@Success	200	{object}	response.APIResponse{data=models.StoreConfigResponse}	"Currency and publishable payment key"
//	@Router		/config/ [get]
func (h *ShippingHandler) GetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.shippingService.StoreConfig())
	}
}
