package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body cannot be empty")

// DecodeJSONBody reads a single JSON document from the request body into dest.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dest); err != nil {
		var maxErr *http.MaxBytesError

		switch {
		case errors.Is(err, io.EOF):
			return errEmptyBody
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body exceeds %d bytes", maxErr.Limit)
		default:
			return fmt.Errorf("invalid JSON format: %w", err)
		}
	}

	return nil
}

// ParseAndValidate decodes and validates the body, writing the 400 response itself on failure.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	logger := middleware.LoggerFromContext(r.Context())

	if err := DecodeJSONBody(w, r, dest); err != nil {
		logger.Warn("Invalid request body", slog.String("endpoint", r.URL.Path), slog.String("error", err.Error()))
		response.Error(w, appErrors.BadRequestError(err.Error()))
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Validation failed", slog.String("endpoint", r.URL.Path), slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
			return false
		}

		logger.Error("Unexpected validation error", slog.Any("error", err))
		response.Error(w, appErrors.ValidationError("Invalid input data"))
		return false
	}

	return true
}
