package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	cacheMocks "github.com/aaravmahajanofficial/storefront/internal/cache/mocks"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/events"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repoMocks "github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBasketID = "3f1c7f4e-8a55-4a53-9d0c-1d2f6c1a0b11"

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder, data any) *response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	if data != nil {
		raw, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, data))
	}

	return &resp
}

func TestAddItem(t *testing.T) {
	t.Run("Success - Item added", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("AddOrIncrement", mock.Anything, testBasketID, int64(7), 1).
			Return(&models.BasketItem{ID: 1, BasketID: testBasketID, VariantID: 7, Quantity: 1}, nil).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodPost, "/api/v1/basket/", strings.NewReader(`{"variant_id": 7}`), testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var item models.BasketItem
		resp := decodeResponse(t, rr, &item)
		assert.True(t, resp.Success)
		assert.Equal(t, int64(7), item.VariantID)
	})

	t.Run("Failure - Missing variant_id does not touch the basket", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		req := testutils.CreateTestRequestWithBasket(http.MethodPost, "/api/v1/basket/", strings.NewReader(`{"quantity": 2}`), testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp := decodeResponse(t, rr, nil)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Contains(t, resp.Error.Details, "Field VariantID is required")
		basketService.AssertNotCalled(t, "AddOrIncrement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Unknown variant", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("AddOrIncrement", mock.Anything, testBasketID, int64(99), 2).
			Return(nil, appErrors.NotFoundError("Product variant 99 not found")).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodPost, "/api/v1/basket/", strings.NewReader(`{"variant_id": 99, "quantity": 2}`), testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - No session", func(t *testing.T) {
		// Arrange
		handler := handlers.NewBasketHandler(mocks.NewMockBasketService(t))
		req := testutils.CreateTestRequestWithoutBasket(http.MethodPost, "/api/v1/basket/", strings.NewReader(`{"variant_id": 7}`), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

// Drives the handler through the real basket service and event bus.
func TestAddItem_PublishesOneEvent(t *testing.T) {
	// Arrange
	baskets := repoMocks.NewMockBasketRepository(t)
	variants := repoMocks.NewMockVariantRepository(t)
	basketCache := cacheMocks.NewMockCache(t)
	bus := events.NewBus(time.Second)

	var received []models.BasketModified
	bus.Subscribe("recorder", func(_ context.Context, e models.BasketModified) error {
		received = append(received, e)
		return nil
	})
	bus.Subscribe("cache", events.InvalidateBasketCache(basketCache))

	variants.On("GetByID", mock.Anything, int64(7)).Return(&models.ProductVariant{ID: 7, Price: decimal.RequireFromString("4.50")}, nil).Once()
	baskets.On("AddOrIncrement", mock.Anything, testBasketID, int64(7), 3).
		Return(&models.BasketItem{ID: 5, BasketID: testBasketID, VariantID: 7, Quantity: 3}, true, nil).Once()
	basketCache.On("Delete", mock.Anything, "cart:"+testBasketID).Return(nil).Once()

	handler := handlers.NewBasketHandler(service.NewBasketService(baskets, variants, basketCache, bus))
	req := testutils.CreateTestRequestWithBasket(http.MethodPost, "/api/v1/basket/", strings.NewReader(`{"variant_id": 7, "quantity": 3}`), testBasketID, nil)
	rr := httptest.NewRecorder()

	// Act
	handler.AddItem().ServeHTTP(rr, req)

	// Assert
	require.Equal(t, http.StatusCreated, rr.Code)
	require.Len(t, received, 1)
	assert.Equal(t, models.BasketActionAdded, received[0].Action)
	assert.Equal(t, testBasketID, received[0].BasketID)
	assert.Equal(t, int64(5), received[0].Item.ID)
}

func TestListItems(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("List", mock.Anything, testBasketID).Return([]*models.BasketItem{
			{ID: 1, VariantID: 7, Quantity: 2},
		}, nil).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodGet, "/api/v1/basket/", nil, testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var items []models.BasketItem
		decodeResponse(t, rr, &items)
		assert.Len(t, items, 1)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("List", mock.Anything, testBasketID).Return(nil, appErrors.DatabaseError("Failed to fetch basket")).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodGet, "/api/v1/basket/", nil, testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListItems().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestTotalItems(t *testing.T) {
	// Arrange
	basketService := mocks.NewMockBasketService(t)
	handler := handlers.NewBasketHandler(basketService)
	basketService.On("TotalItems", mock.Anything, testBasketID).Return(5, nil).Once()

	req := testutils.CreateTestRequestWithBasket(http.MethodGet, "/api/v1/basket/total/", nil, testBasketID, nil)
	rr := httptest.NewRecorder()

	// Act
	handler.TotalItems().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var quantity models.QuantityResponse
	decodeResponse(t, rr, &quantity)
	assert.Equal(t, 5, quantity.Quantity)
}

func TestItemCount(t *testing.T) {
	t.Run("Success - Absent variant counts zero", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)
		basketService.On("ItemCount", mock.Anything, testBasketID, int64(8)).Return(0, nil).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodGet, "/api/v1/basket/count/?variant_id=8", nil, testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ItemCount().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var quantity models.QuantityResponse
		decodeResponse(t, rr, &quantity)
		assert.Zero(t, quantity.Quantity)
	})

	t.Run("Failure - Missing variant_id", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		req := testutils.CreateTestRequestWithBasket(http.MethodGet, "/api/v1/basket/count/", nil, testBasketID, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ItemCount().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("Success - Returns remaining items", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("Remove", mock.Anything, testBasketID, int64(7)).Return(nil).Once()
		basketService.On("List", mock.Anything, testBasketID).Return([]*models.BasketItem{}, nil).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodDelete, "/api/v1/basket/7/", nil, testBasketID, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var items []models.BasketItem
		decodeResponse(t, rr, &items)
		assert.Empty(t, items)
	})

	t.Run("Failure - Invalid variant_id", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		req := testutils.CreateTestRequestWithBasket(http.MethodDelete, "/api/v1/basket/abc/", nil, testBasketID, map[string]string{"variant_id": "abc"})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("Remove", mock.Anything, testBasketID, int64(7)).Return(appErrors.DatabaseError("Failed to remove basket item").WithError(errors.New("boom"))).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodDelete, "/api/v1/basket/7/", nil, testBasketID, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("Success - Decrease defaults to one", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		basketService.On("UpdateQuantity", mock.Anything, testBasketID, int64(7), models.QuantityDecrease, 1).Return(0, nil).Once()

		req := testutils.CreateTestRequestWithBasket(http.MethodPut, "/api/v1/basket/7/", strings.NewReader(`{"action": "decrease"}`), testBasketID, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var quantity models.QuantityResponse
		decodeResponse(t, rr, &quantity)
		assert.Zero(t, quantity.Quantity)
	})

	t.Run("Failure - Unknown action", func(t *testing.T) {
		// Arrange
		basketService := mocks.NewMockBasketService(t)
		handler := handlers.NewBasketHandler(basketService)

		req := testutils.CreateTestRequestWithBasket(http.MethodPut, "/api/v1/basket/7/", strings.NewReader(`{"action": "double"}`), testBasketID, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
