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

type ProductRequestHandler struct {
	requestService service.ProductRequestService
	validator      *validator.Validate
}

func NewProductRequestHandler(requestService service.ProductRequestService) *ProductRequestHandler {
	return &ProductRequestHandler{requestService: requestService, validator: validator.New()}
}

// CreateRequest godoc
//
//	@Summary		Ask to be notified about a variant
//	@Tags			Product Requests
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.CreateProductRequestRequest					true	"Variant and contact email"
//	@Success		201		{object}	response.APIResponse{data=models.ProductRequest}	"Created request"
//	@Failure		400		{object}	response.ErrorResponse								"Validation error"
//	@Failure		404		{object}	response.ErrorResponse								"Variant not found"
//	@Router			/requests/ [post]
func (h *ProductRequestHandler) CreateRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequestRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product request input")
			return
		}

		request, err := h.requestService.Create(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product request", slog.Int64("variantId", req.VariantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product request created", slog.Int64("requestId", request.ID), slog.Int64("variantId", request.VariantID))
		response.Success(w, http.StatusCreated, request)
	}
}

// GetRequest godoc
//
//	@Summary	Get a product request
//	@Tags		Product Requests
//	@Produce	json
//	@Param		id	path		int													true	"Product request ID"
//	@Success	200	{object}	response.APIResponse{data=models.ProductRequest}	"Product request"
//	@Failure	404	{object}	response.ErrorResponse								"Not found"
//	@Router		/requests/{id}/ [get]
func (h *ProductRequestHandler) GetRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		request, err := h.requestService.Get(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get product request", slog.Int64("requestId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, request)
	}
}

// ListRequests godoc
//
//	@Summary	List product requests
//	@Tags		Product Requests
//	@Produce	json
//	@Param		page		query		int																		false	"Page number (default: 1)"					minimum(1)
//	@Param		pageSize	query		int																		false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	response.APIResponse{data=models.PaginatedResponse{Data=[]models.ProductRequest}}	"Page of requests"
//	@Failure	401			{object}	response.ErrorResponse													"Admin credentials required"
//	@Security	BasicAuth
//	@Router		/requests/ [get]
func (h *ProductRequestHandler) ListRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, size := utils.ParsePagination(r)

		result, err := h.requestService.List(r.Context(), page, size)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list product requests", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, result)
	}
}

// ListVariantRequests godoc
//
//	@Summary	List product requests for a variant
//	@Tags		Product Requests
//	@Produce	json
//	@Param		variant_id	path		int													true	"Product variant ID"
//	@Success	200			{object}	response.APIResponse{data=[]models.ProductRequest}	"Requests"
//	@Failure	400			{object}	response.ErrorResponse								"Invalid variant_id"
//	@Router		/requests/variant/{variant_id}/ [get]
func (h *ProductRequestHandler) ListVariantRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		variantID, err := utils.ParseID(r, "variant_id")
		if err != nil {
			response.Error(w, err)
			return
		}

		requests, err := h.requestService.ListByVariant(r.Context(), variantID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list variant requests", slog.Int64("variantId", variantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, requests)
	}
}

// NotifyVariant godoc
//
//	@Summary		Email everyone waiting for a variant
//	@Description	Sends one email per product request through SendGrid and reports how many were accepted.
//	@Tags			Product Requests
//	@Produce		json
//	@Param			variant_id	path		int												true	"Product variant ID"
//	@Success		200			{object}	response.APIResponse{data=models.NotifyResult}	"Number of emails sent"
//	@Failure		404			{object}	response.ErrorResponse							"Variant not found"
//	@Failure		502			{object}	response.ErrorResponse							"Email provider unavailable"
//	@Security		BasicAuth
//	@Router			/requests/variant/{variant_id}/notify/ [post]
func (h *ProductRequestHandler) NotifyVariant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		variantID, err := utils.ParseID(r, "variant_id")
		if err != nil {
			response.Error(w, err)
			return
		}

		notified, err := h.requestService.NotifyVariant(r.Context(), variantID)
		if err != nil {
			logger.Error("Failed to notify requesters", slog.Int64("variantId", variantID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.NotifyResult{Notified: notified})
	}
}
