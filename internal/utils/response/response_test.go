package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rr *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var body response.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))

	return body
}

func TestError(t *testing.T) {
	t.Run("Success - AppError keeps code and detail", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()
		err := appErrors.ConflictError("Order cannot be refunded").WithDetail("status FAILURE")

		// Act
		response.Error(rr, err)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
		body := decode(t, rr)
		assert.False(t, body.Success)
		assert.Equal(t, appErrors.ErrCodeConflict, body.Error.Code)
		assert.Equal(t, []string{"status FAILURE"}, body.Error.Details)
	})

	t.Run("Success - Plain error is hidden behind a 500", func(t *testing.T) {
		// Arrange
		rr := httptest.NewRecorder()

		// Act
		response.Error(rr, errors.New("pq: relation does not exist"))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		body := decode(t, rr)
		assert.Equal(t, appErrors.ErrCodeInternal, body.Error.Code)
		assert.NotContains(t, body.Error.Message, "pq")
	})
}

func TestValidationError(t *testing.T) {
	// Arrange
	type input struct {
		VariantID int64  `json:"variant_id" validate:"required"`
		Country   string `json:"country" validate:"required,iso3166_1_alpha2"`
		Quantity  int    `json:"quantity" validate:"gte=1"`
	}

	err := validator.New().Struct(input{Country: "Britain"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	rr := httptest.NewRecorder()

	// Act
	response.ValidationError(rr, validationErrs)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode(t, rr)
	assert.Equal(t, appErrors.ErrCodeValidation, body.Error.Code)
	assert.ElementsMatch(t, []string{
		"Field VariantID is required",
		"Field Country must be a two letter country code",
		"Field Quantity must be at least 1",
	}, body.Error.Details)
}
