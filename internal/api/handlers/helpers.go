package handlers

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/session"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

// basketID writes an error response and returns false when the session
// middleware did not run for this route.
func basketID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := session.FromContext(r.Context())
	if !ok {
		response.Error(w, errors.InternalError("Basket session is not available"))
		return "", false
	}

	return id, true
}
