package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		requestService := mocks.NewMockProductRequestService(t)
		handler := handlers.NewProductRequestHandler(requestService)

		requestService.On("Create", mock.Anything, &models.CreateProductRequestRequest{VariantID: 7, Email: "jane@example.com"}).
			Return(&models.ProductRequest{ID: 3, VariantID: 7, Email: "jane@example.com"}, nil).Once()

		req := testutils.CreateTestRequestWithoutBasket(http.MethodPost, "/api/v1/requests/",
			strings.NewReader(`{"variant_id": 7, "email": "jane@example.com"}`), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateRequest().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var created models.ProductRequest
		decodeResponse(t, rr, &created)
		assert.Equal(t, int64(3), created.ID)
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		// Arrange
		handler := handlers.NewProductRequestHandler(mocks.NewMockProductRequestService(t))
		req := testutils.CreateTestRequestWithoutBasket(http.MethodPost, "/api/v1/requests/",
			strings.NewReader(`{"variant_id": 7, "email": "not-an-email"}`), nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateRequest().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp := decodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
	})
}

func TestGetRequest(t *testing.T) {
	// Arrange
	requestService := mocks.NewMockProductRequestService(t)
	handler := handlers.NewProductRequestHandler(requestService)
	requestService.On("Get", mock.Anything, int64(9)).Return(nil, appErrors.NotFoundError("Product request not found")).Once()

	req := testutils.CreateTestRequestWithoutBasket(http.MethodGet, "/api/v1/requests/9/", nil, map[string]string{"id": "9"})
	rr := httptest.NewRecorder()

	// Act
	handler.GetRequest().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListRequests(t *testing.T) {
	// Arrange
	requestService := mocks.NewMockProductRequestService(t)
	handler := handlers.NewProductRequestHandler(requestService)
	requestService.On("List", mock.Anything, 2, 5).Return(&models.PaginatedResponse{
		Data: []*models.ProductRequest{{ID: 6}}, Total: 6, Page: 2, PageSize: 5,
	}, nil).Once()

	req := testutils.CreateTestRequestWithoutBasket(http.MethodGet, "/api/v1/requests/?page=2&pageSize=5", nil, nil)
	rr := httptest.NewRecorder()

	// Act
	handler.ListRequests().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var page models.PaginatedResponse
	decodeResponse(t, rr, &page)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 2, page.Page)
}

func TestListVariantRequests(t *testing.T) {
	// Arrange
	requestService := mocks.NewMockProductRequestService(t)
	handler := handlers.NewProductRequestHandler(requestService)
	requestService.On("ListByVariant", mock.Anything, int64(7)).Return([]*models.ProductRequest{{ID: 1}, {ID: 2}}, nil).Once()

	req := testutils.CreateTestRequestWithoutBasket(http.MethodGet, "/api/v1/requests/variant/7/", nil, map[string]string{"variant_id": "7"})
	rr := httptest.NewRecorder()

	// Act
	handler.ListVariantRequests().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusOK, rr.Code)

	var requests []models.ProductRequest
	decodeResponse(t, rr, &requests)
	assert.Len(t, requests, 2)
}

func TestNotifyVariant(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		requestService := mocks.NewMockProductRequestService(t)
		handler := handlers.NewProductRequestHandler(requestService)
		requestService.On("NotifyVariant", mock.Anything, int64(7)).Return(2, nil).Once()

		req := testutils.CreateTestRequestWithoutBasket(http.MethodPost, "/api/v1/requests/variant/7/notify/", nil, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.NotifyVariant().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var result models.NotifyResult
		decodeResponse(t, rr, &result)
		assert.Equal(t, 2, result.Notified)
	})

	t.Run("Failure - Email provider down", func(t *testing.T) {
		// Arrange
		requestService := mocks.NewMockProductRequestService(t)
		handler := handlers.NewProductRequestHandler(requestService)
		requestService.On("NotifyVariant", mock.Anything, int64(7)).Return(0, appErrors.ThirdPartyError("Failed to send notification emails")).Once()

		req := testutils.CreateTestRequestWithoutBasket(http.MethodPost, "/api/v1/requests/variant/7/notify/", nil, map[string]string{"variant_id": "7"})
		rr := httptest.NewRecorder()

		// Act
		handler.NotifyVariant().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
