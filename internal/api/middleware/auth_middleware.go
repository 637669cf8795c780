package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"golang.org/x/crypto/bcrypt"
)

const adminRealm = `Basic realm="storefront-admin"`

// AdminAuth guards staff endpoints with HTTP basic auth checked against a bcrypt hash.
// An empty hash disables every admin endpoint.
type AdminAuth struct {
	user         string
	passwordHash []byte
}

func NewAdminAuth(user, passwordHash string) *AdminAuth {
	return &AdminAuth{user: user, passwordHash: []byte(passwordHash)}
}

func (m *AdminAuth) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		if len(m.passwordHash) == 0 {
			logger.Warn("Admin endpoint called but no admin password is configured")
			response.Error(w, errors.ForbiddenError("Admin access is disabled"))
			return
		}

		user, password, ok := r.BasicAuth()
		if !ok {
			logger.Warn("Missing basic auth credentials")
			w.Header().Set("WWW-Authenticate", adminRealm)
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		userMatches := subtle.ConstantTimeCompare([]byte(user), []byte(m.user)) == 1
		passwordErr := bcrypt.CompareHashAndPassword(m.passwordHash, []byte(password))

		if !userMatches || passwordErr != nil {
			logger.Warn("Invalid admin credentials", slog.String("user", user))
			w.Header().Set("WWW-Authenticate", adminRealm)
			response.Error(w, errors.UnauthorizedError("Invalid credentials"))
			return
		}

		requestScopedLogger := logger.With(slog.String("admin", user))
		ctx := WithLogger(r.Context(), requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
