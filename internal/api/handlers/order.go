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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateToken godoc
//
//	@Summary		Tokenise card details
//	@Description	Exchanges card details for a single use payment token. Card details are never stored.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			card	body		models.CardDetails								true	"Card details"
//	@Success		200		{object}	response.APIResponse{data=models.TokenResponse}	"Payment token"
//	@Failure		400		{object}	response.ErrorResponse							"Validation error"
//	@Failure		402		{object}	response.ErrorResponse							"Card rejected"
//	@Failure		502		{object}	response.ErrorResponse							"Payment gateway unavailable"
//	@Router			/checkout/token/ [post]
func (h *OrderHandler) CreateToken() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var card models.CardDetails
		if !utils.ParseAndValidate(r, w, &card, h.validator) {
			logger.Warn("Invalid card details input")
			return
		}

		token, err := h.orderService.GetToken(r.Context(), card)
		if err != nil {
			logger.Warn("Failed to tokenise card", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.TokenResponse{Token: token})
	}
}

// Checkout godoc
//
//	@Summary		Place an order for the basket
//	@Description	Prices the basket, adds shipping, charges the token and clears the basket on success.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			checkout	body		models.CheckoutRequest								true	"Payment token, contact email and shipping details"
//	@Success		201			{object}	response.APIResponse{data=models.CheckoutResponse}	"Paid order"
//	@Failure		400			{object}	response.ErrorResponse								"Validation error or empty basket"
//	@Failure		402			{object}	response.ErrorResponse								"Payment declined"
//	@Failure		429			{object}	response.ErrorResponse								"Too many checkout attempts"
//	@Failure		502			{object}	response.ErrorResponse								"Payment gateway unavailable"
//	@Router			/checkout/ [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := basketID(w, r)
		if !ok {
			return
		}

		logger = logger.With(slog.String("basketId", id))

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid checkout input")
			return
		}

		result, err := h.orderService.Checkout(r.Context(), id, utils.ClientIP(r), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.Int64("orderId", result.Order.ID))
		response.Success(w, http.StatusCreated, result)
	}
}

// GetOrder godoc
//
//	@Summary	Get an order by ID
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int										true	"Order ID"
//	@Success	200	{object}	response.APIResponse{data=models.Order}	"Order"
//	@Failure	400	{object}	response.ErrorResponse					"Invalid order ID"
//	@Failure	401	{object}	response.ErrorResponse					"Admin credentials required"
//	@Failure	404	{object}	response.ErrorResponse					"Order not found"
//	@Security	BasicAuth
//	@Router		/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// RefundOrder godoc
//
//	@Summary		Refund an order
//	@Description	Refunds the full order total. Only SUBMITTED or FULFILLED paid orders can be refunded.
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		int												true	"Order ID"
//	@Success		200	{object}	response.APIResponse{data=models.RefundResponse}	"Refunded order"
//	@Failure		404	{object}	response.ErrorResponse							"Order not found"
//	@Failure		409	{object}	response.ErrorResponse							"Order cannot be refunded or the refund was not accepted"
//	@Failure		502	{object}	response.ErrorResponse							"Payment gateway unavailable"
//	@Security		BasicAuth
//	@Router			/orders/{id}/refund [post]
func (h *OrderHandler) RefundOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		result, err := h.orderService.Refund(r.Context(), id)
		if err != nil {
			logger.Warn("Refund failed", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Order refunded", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, result)
	}
}

// FulfillOrder godoc
//
//	@Summary	Mark an order as fulfilled
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int										true	"Order ID"
//	@Success	200	{object}	response.APIResponse{data=models.Order}	"Fulfilled order"
//	@Failure	404	{object}	response.ErrorResponse					"Order not found"
//	@Failure	409	{object}	response.ErrorResponse					"Order is not SUBMITTED"
//	@Security	BasicAuth
//	@Router		/orders/{id}/fulfill [post]
func (h *OrderHandler) FulfillOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.Fulfill(r.Context(), id)
		if err != nil {
			logger.Warn("Fulfil failed", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}
