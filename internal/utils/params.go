package utils

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ParseID reads a positive integer path value.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, appErrors.BadRequestError(fmt.Sprintf("%s is required", name))
	}

	return parsePositive(name, raw)
}

// ParseQueryID reads a positive integer query parameter.
func ParseQueryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, appErrors.BadRequestError(fmt.Sprintf("%s is required", name))
	}

	return parsePositive(name, raw)
}

func parsePositive(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.BadRequestError(fmt.Sprintf("%s must be a positive integer", name)).WithDetail(raw)
	}

	return id, nil
}

// ParsePagination falls back to the defaults for missing or out of range values.
func ParsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// ClientIP prefers the first X-Forwarded-For hop over the socket address.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
