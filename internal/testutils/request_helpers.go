package testutils

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/session"
)

// CreateTestRequestWithBasket builds a request that already went through the
// session and logging middleware for basketID.
func CreateTestRequestWithBasket(method, target string, body io.Reader, basketID string, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutBasket(method, target, body, pathParams)

	return req.WithContext(session.WithBasketID(req.Context(), basketID))
}

func CreateTestRequestWithoutBasket(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}
