package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/utils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type BasketHandler struct {
	basketService service.BasketService
	validator     *validator.Validate
}

func NewBasketHandler(basketService service.BasketService) *BasketHandler {
	return &BasketHandler{basketService: basketService, validator: validator.New()}
}

// ListItems godoc
//
//	@Summary		List basket items
//	@Description	Lists the items in the caller's basket. The basket is identified by the session cookie.
//	@Tags			Basket
//	@Produce		json
//	@Success		200	{object}	response.APIResponse{data=[]models.BasketItem}	"Basket items"
//	@Failure		500	{object}	response.ErrorResponse							"Internal server error"
//	@Router			/basket/ [get]
func (h *BasketHandler) ListItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		items, err := h.basketService.List(r.Context(), id)
		if err != nil {
			logger.Error("Failed to list basket", slog.String("basketId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// TotalItems godoc
//
//	@Summary	Count all items in the basket
//	@Tags		Basket
//	@Produce	json
//	@Success	200	{object}	response.APIResponse{data=models.QuantityResponse}	"Sum of item quantities"
//	@Failure	500	{object}	response.ErrorResponse								"Internal server error"
//	@Router		/basket/total/ [get]
func (h *BasketHandler) TotalItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		total, err := h.basketService.TotalItems(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to count basket items", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.QuantityResponse{Quantity: total})
	}
}

// ItemCount godoc
//
//	@Summary	Quantity of one variant in the basket
//	@Tags		Basket
//	@Produce	json
//	@Param		variant_id	query		int													true	"Product variant ID"
//	@Success	200			{object}	response.APIResponse{data=models.QuantityResponse}	"Quantity, 0 when absent"
//	@Failure	400			{object}	response.ErrorResponse								"Missing or invalid variant_id"
//	@Router		/basket/count/ [get]
func (h *BasketHandler) ItemCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		variantID, err := utils.ParseQueryID(r, "variant_id")
		if err != nil {
			logger.Warn("Invalid variant id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		count, err := h.basketService.ItemCount(r.Context(), id, variantID)
		if err != nil {
			logger.Error("Failed to count variant", slog.Int64("variantId", variantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.QuantityResponse{Quantity: count})
	}
}

// AddItem godoc
//
//	@Summary		Add a variant to the basket
//	@Description	Adds the variant or increments its quantity when it is already in the basket.
//	@Tags			Basket
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddBasketItemRequest						true	"Variant and quantity (default 1)"
//	@Success		201		{object}	response.APIResponse{data=models.BasketItem}	"Basket item after the change"
//	@Failure		400		{object}	response.ErrorResponse							"Missing variant_id or invalid quantity"
//	@Failure		404		{object}	response.ErrorResponse							"Variant not found"
//	@Router			/basket/ [post]
func (h *BasketHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		var req models.AddBasketItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add to basket input")
			return
		}

		if req.Quantity == 0 {
			req.Quantity = 1
		}

		item, err := h.basketService.AddOrIncrement(r.Context(), id, *req.VariantID, req.Quantity)
		if err != nil {
			logger.Error("Failed to add item to basket", slog.Int64("variantId", *req.VariantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Item added to basket", slog.String("basketId", id), slog.Int64("variantId", item.VariantID), slog.Int("quantity", item.Quantity))
		response.Success(w, http.StatusCreated, item)
	}
}

// RemoveItem godoc
//
//	@Summary		Remove a variant from the basket
//	@Description	Removing a variant that is not in the basket is not an error.
//	@Tags			Basket
//	@Produce		json
//	@Param			variant_id	path		int												true	"Product variant ID"
//	@Success		200			{object}	response.APIResponse{data=[]models.BasketItem}	"Remaining basket items"
//	@Failure		400			{object}	response.ErrorResponse							"Invalid variant_id"
//	@Router			/basket/{variant_id}/ [delete]
func (h *BasketHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		variantID, err := utils.ParseID(r, "variant_id")
		if err != nil {
			logger.Warn("Invalid variant id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.basketService.Remove(r.Context(), id, variantID); err != nil {
			logger.Error("Failed to remove basket item", slog.Int64("variantId", variantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		items, err := h.basketService.List(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// UpdateQuantity godoc
//
//	@Summary	Increase or decrease the quantity of a basket item
//	@Tags		Basket
//	@Accept		json
//	@Produce	json
//	@Param		variant_id	path		int													true	"Product variant ID"
//	@Param		change		body		models.UpdateBasketItemRequest						true	"Direction and amount (default 1)"
//	@Success	200			{object}	response.APIResponse{data=models.QuantityResponse}	"New quantity, 0 when the item was removed"
//	@Failure	400			{object}	response.ErrorResponse								"Invalid input"
//	@Failure	404			{object}	response.ErrorResponse								"Item is not in the basket"
//	@Router		/basket/{variant_id}/ [put]
func (h *BasketHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		variantID, err := utils.ParseID(r, "variant_id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateBasketItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid quantity update input")
			return
		}

		if req.By == 0 {
			req.By = 1
		}

		quantity, err := h.basketService.UpdateQuantity(r.Context(), id, variantID, req.Action, req.By)
		if err != nil {
			logger.Error("Failed to update quantity", slog.Int64("variantId", variantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.QuantityResponse{Quantity: quantity})
	}
}
