package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

var validationMessages = map[string]string{
	"required":         "Field %s is required",
	"email":            "Field %s must be a valid email address",
	"min":              "Field %s must be at least %s",
	"max":              "Field %s must be at most %s",
	"gt":               "Field %s must be greater than %s",
	"gte":              "Field %s must be at least %s",
	"lt":               "Field %s must be less than %s",
	"oneof":            "Field %s must be one of [%s]",
	"numeric":          "Field %s must contain only digits",
	"len":              "Field %s must be exactly %s characters",
	"iso3166_1_alpha2": "Field %s must be a two letter country code",
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", slog.Int("status", statusCode), slog.Any("error", err))
	}
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error writes err as an error envelope. Errors that are not AppErrors are
// reported as a generic 500 so internal details never reach the client.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		appErr = errors.InternalError("An unexpected error occurred")
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	WriteJson(w, appErr.StatusCode, APIResponse{Success: false, Error: body})
}

func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))

	for _, fieldErr := range errs {
		details = append(details, describe(fieldErr))
	}

	WriteJson(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

func describe(fieldErr validator.FieldError) string {
	format, ok := validationMessages[fieldErr.Tag()]
	if !ok {
		return fmt.Sprintf("Field %s is invalid: %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param())
	}

	if fieldErr.Param() == "" {
		return fmt.Sprintf(format, fieldErr.Field())
	}

	return fmt.Sprintf(format, fieldErr.Field(), fieldErr.Param())
}
