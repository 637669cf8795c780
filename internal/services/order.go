package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/payments"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

type OrderService interface {
	Checkout(ctx context.Context, basketID, ipAddress string, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	GetToken(ctx context.Context, card models.CardDetails) (string, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	Refund(ctx context.Context, id int64) (*models.RefundResponse, error)
	Fulfill(ctx context.Context, id int64) (*models.Order, error)
}

type orderService struct {
	orders    repository.OrderRepository
	basket    BasketService
	shipping  ShippingService
	gateway   payments.Gateway
	rateLimit repository.RateLimitRepository
	cache     cache.Cache
	now       func() time.Time
}

func NewOrderService(orders repository.OrderRepository, basket BasketService, shipping ShippingService, gateway payments.Gateway, rateLimit repository.RateLimitRepository, orderCache cache.Cache) OrderService {
	return &orderService{
		orders:    orders,
		basket:    basket,
		shipping:  shipping,
		gateway:   gateway,
		rateLimit: rateLimit,
		cache:     orderCache,
		now:       time.Now,
	}
}

// Checkout turns the basket into a SUBMITTED order and charges it. A declined
// charge marks the order FAILURE and leaves the basket untouched.
func (s *orderService) Checkout(ctx context.Context, basketID, ipAddress string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	allowed, _, retryAfter, err := s.rateLimit.CheckCheckoutRateLimit(ctx, basketID)
	if err != nil {
		return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
	}
	if !allowed {
		return nil, errors.TooManyRequestsError("Too many checkout attempts", time.Duration(retryAfter)*time.Second)
	}

	items, err := s.basket.ListFromStore(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.BadRequestError("Basket is empty")
	}

	address := req.ShippingAddress
	order := &models.Order{
		Status:          models.OrderStatusSubmitted,
		Email:           req.Email,
		IPAddress:       ipAddress,
		ShippingAddress: &address,
		ShippingOption:  req.ShippingOption,
		ShippingRate:    s.shipping.Rate(address.Country, req.ShippingOption),
		Items:           make([]models.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		if item.Variant == nil {
			return nil, errors.InternalError("Basket item has no product variant").
				WithDetail(fmt.Sprintf("variant %d", item.VariantID))
		}

		order.Items = append(order.Items, models.OrderItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.Variant.Price,
		})
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, errors.DatabaseError("Failed to create order").WithError(err)
	}

	total := order.Total()

	chargeID, err := s.gateway.CreatePayment(ctx, total, req.Token, "Order "+strconv.FormatInt(order.ID, 10))
	if err != nil {
		var paymentErr *payments.PaymentError
		if !stdErrors.As(err, &paymentErr) {
			metrics.RecordPayment(metrics.OutcomeError)
			return nil, errors.ThirdPartyError("Payment gateway unavailable").WithError(err)
		}

		metrics.RecordPayment(metrics.OutcomeDeclined)
		logger.Warn("Payment declined", slog.Int64("orderId", order.ID), slog.String("reason", paymentErr.Message))

		if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusFailure); err != nil {
			logger.Error("Failed to mark order as failed", slog.Int64("orderId", order.ID), slog.String("error", err.Error()))
		}

		return nil, errors.PaymentError(paymentErr.Message).WithError(err)
	}

	metrics.RecordPayment(metrics.OutcomeSucceeded)

	paidAt := s.now()
	if err := s.orders.UpdatePayment(ctx, order.ID, chargeID, paidAt); err != nil {
		logger.Error("Charge taken but order not updated",
			slog.Int64("orderId", order.ID),
			slog.String("chargeId", chargeID),
			slog.String("error", err.Error()))
		return nil, errors.DatabaseError("Failed to record payment").WithError(err)
	}

	order.TransactionID = chargeID
	order.PaymentDate = &paidAt

	if err := s.basket.Clear(ctx, basketID); err != nil {
		logger.Error("Failed to clear basket after checkout", slog.String("basketId", basketID), slog.String("error", err.Error()))
	}

	logger.Info("Order paid", slog.Int64("orderId", order.ID), slog.String("total", total.String()))

	return &models.CheckoutResponse{Order: order, Total: total}, nil
}

func (s *orderService) GetToken(ctx context.Context, card models.CardDetails) (string, error) {
	token, err := s.gateway.GetToken(ctx, card)
	if err != nil {
		var paymentErr *payments.PaymentError
		if stdErrors.As(err, &paymentErr) {
			return "", errors.PaymentError(paymentErr.Message).WithError(err)
		}

		return "", errors.ThirdPartyError("Failed to tokenise card").WithError(err)
	}

	return token, nil
}

func (s *orderService) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	order, err := cache.Fetch(ctx, s.cache, s.cacheKey(id), 0, func(ctx context.Context) (*models.Order, error) {
		return s.orders.GetOrderByID(ctx, id)
	})
	if stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

// Refund returns the full order total to the customer. Only paid orders that
// are SUBMITTED or FULFILLED can be refunded.
func (s *orderService) Refund(ctx context.Context, id int64) (*models.RefundResponse, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.TransactionID == "" {
		return nil, errors.ConflictError("Order has not been paid")
	}
	if order.Status != models.OrderStatusSubmitted && order.Status != models.OrderStatusFulfilled {
		return nil, errors.ConflictError(fmt.Sprintf("Order in status %s cannot be refunded", order.Status))
	}

	refunded, err := s.gateway.IssueRefund(ctx, order.TransactionID, order.Total())
	if err != nil {
		metrics.RecordRefund(metrics.OutcomeError)
		return nil, errors.ThirdPartyError("Refund request failed").WithError(err)
	}
	if !refunded {
		metrics.RecordRefund(metrics.OutcomeDeclined)
		return nil, errors.ConflictError("Refund was not accepted")
	}

	metrics.RecordRefund(metrics.OutcomeSucceeded)

	if err := s.setStatus(ctx, order, models.OrderStatusRefunded); err != nil {
		return nil, err
	}

	return &models.RefundResponse{Refunded: true, Order: order}, nil
}

func (s *orderService) Fulfill(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status != models.OrderStatusSubmitted {
		return nil, errors.ConflictError(fmt.Sprintf("Order in status %s cannot be fulfilled", order.Status))
	}

	if err := s.setStatus(ctx, order, models.OrderStatusFulfilled); err != nil {
		return nil, err
	}

	return order, nil
}

// load bypasses the cache so status transitions see the stored state.
func (s *orderService) load(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, id)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError("Order not found").WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) setStatus(ctx context.Context, order *models.Order, status models.OrderStatus) error {
	if err := s.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return errors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = status

	if err := s.cache.Delete(ctx, s.cacheKey(order.ID)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate order cache",
			slog.Int64("orderId", order.ID),
			slog.String("error", err.Error()))
	}

	middleware.LoggerFromContext(ctx).Info("Order status changed", slog.Int64("orderId", order.ID), slog.String("status", string(status)))

	return nil
}

func (s *orderService) cacheKey(id int64) string {
	return cache.Key(cache.OrderKeyPrefix, strconv.FormatInt(id, 10))
}
