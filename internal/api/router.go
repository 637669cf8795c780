// Package api assembles the HTTP routes of the storefront.
package api

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Basket         *handlers.BasketHandler
	Shipping       *handlers.ShippingHandler
	Order          *handlers.OrderHandler
	ProductRequest *handlers.ProductRequestHandler
	Health         http.Handler
}

// NewRouter registers every route. Basket and checkout routes run behind the
// session resolver; order and request management routes need admin credentials.
func NewRouter(h Handlers, sessions *session.Resolver, admin *middleware.AdminAuth) http.Handler {
	mux := http.NewServeMux()

	withSession := func(next http.HandlerFunc) http.Handler {
		return sessions.Middleware(next)
	}

	// Basket
	mux.Handle("GET /api/v1/basket/{$}", withSession(h.Basket.ListItems()))
	mux.Handle("POST /api/v1/basket/{$}", withSession(h.Basket.AddItem()))
	mux.Handle("GET /api/v1/basket/total/{$}", withSession(h.Basket.TotalItems()))
	mux.Handle("GET /api/v1/basket/count/{$}", withSession(h.Basket.ItemCount()))
	mux.Handle("DELETE /api/v1/basket/{variant_id}/{$}", withSession(h.Basket.RemoveItem()))
	mux.Handle("PUT /api/v1/basket/{variant_id}/{$}", withSession(h.Basket.UpdateQuantity()))

	// Shipping and store
	mux.HandleFunc("GET /api/v1/shipping/rate/{$}", h.Shipping.GetRate())
	mux.HandleFunc("GET /api/v1/shipping/options/{$}", h.Shipping.ListOptions())
	mux.HandleFunc("GET /api/v1/config/{$}", h.Shipping.GetConfig())

	// Checkout
	mux.HandleFunc("POST /api/v1/checkout/token/{$}", h.Order.CreateToken())
	mux.Handle("POST /api/v1/checkout/{$}", withSession(h.Order.Checkout()))

	// Orders
	mux.HandleFunc("GET /api/v1/orders/{id}", admin.Authenticate(h.Order.GetOrder()))
	mux.HandleFunc("POST /api/v1/orders/{id}/refund", admin.Authenticate(h.Order.RefundOrder()))
	mux.HandleFunc("POST /api/v1/orders/{id}/fulfill", admin.Authenticate(h.Order.FulfillOrder()))

	// Product requests
	mux.HandleFunc("GET /api/v1/requests/{$}", admin.Authenticate(h.ProductRequest.ListRequests()))
	mux.HandleFunc("POST /api/v1/requests/{$}", h.ProductRequest.CreateRequest())
	mux.HandleFunc("GET /api/v1/requests/{id}/{$}", h.ProductRequest.GetRequest())
	mux.HandleFunc("GET /api/v1/requests/variant/{variant_id}/{$}", h.ProductRequest.ListVariantRequests())
	mux.HandleFunc("POST /api/v1/requests/variant/{variant_id}/notify/{$}", admin.Authenticate(h.ProductRequest.NotifyVariant()))

	// Operations
	if h.Health != nil {
		mux.Handle("GET /health", h.Health)
	}
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return metrics.Middleware(mux)
}
