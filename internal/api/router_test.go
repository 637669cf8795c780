package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type routerMocks struct {
	basket   *mocks.MockBasketService
	shipping *mocks.MockShippingService
	order    *mocks.MockOrderService
	requests *mocks.MockProductRequestService
}

func setupRouter(t *testing.T) (http.Handler, routerMocks) {
	t.Helper()

	m := routerMocks{
		basket:   mocks.NewMockBasketService(t),
		shipping: mocks.NewMockShippingService(t),
		order:    mocks.NewMockOrderService(t),
		requests: mocks.NewMockProductRequestService(t),
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	router := api.NewRouter(api.Handlers{
		Basket:         handlers.NewBasketHandler(m.basket),
		Shipping:       handlers.NewShippingHandler(m.shipping),
		Order:          handlers.NewOrderHandler(m.order),
		ProductRequest: handlers.NewProductRequestHandler(m.requests),
	}, session.NewResolver([]byte("router-test-key"), time.Hour, false), middleware.NewAdminAuth("admin", string(hash)))

	return router, m
}

func TestRouter_BasketSessionIsStable(t *testing.T) {
	// Arrange
	router, m := setupRouter(t)

	var seen []string
	m.basket.On("List", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { seen = append(seen, args.String(1)) }).
		Return([]*models.BasketItem{}, nil).Twice()

	// Act
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/basket/", nil))

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)

	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/basket/", nil)
	req.AddCookie(cookies[0])
	router.ServeHTTP(second, req)

	// Assert
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, second.Result().Cookies(), "an existing session must not be reissued")
	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestRouter_AdminRoutesNeedCredentials(t *testing.T) {
	t.Run("Failure - No credentials", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/orders/42/refund", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Success - Valid credentials", func(t *testing.T) {
		router, m := setupRouter(t)
		m.order.On("Fulfill", mock.Anything, int64(42)).Return(&models.Order{ID: 42, Status: models.OrderStatusFulfilled}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/42/fulfill", nil)
		req.SetBasicAuth("admin", "secret")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestRouter_UnknownBasketSubpath(t *testing.T) {
	router, _ := setupRouter(t)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/basket/7/extra/", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
