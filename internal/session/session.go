package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const CookieName = "storefront_session"

type Claims struct {
	BasketID string `json:"basket_id"`
	jwt.RegisteredClaims
}

// Resolver keeps the basket identity of anonymous callers in a signed session cookie.
type Resolver struct {
	key    []byte
	ttl    time.Duration
	secure bool
}

func NewResolver(key []byte, ttl time.Duration, secure bool) *Resolver {
	return &Resolver{key: key, ttl: ttl, secure: secure}
}

// BasketID returns the basket id stored in the caller's session. When the request
// carries no valid session a new id is generated and written to the response cookie.
func (s *Resolver) BasketID(w http.ResponseWriter, r *http.Request) string {

	if basketID, ok := s.read(r); ok {
		return basketID
	}

	basketID := uuid.NewString()

	if err := s.write(w, basketID); err != nil {
		slog.Error("Failed to write session cookie", slog.String("error", err.Error()))
	}

	return basketID
}

func (s *Resolver) read(r *http.Request) (string, bool) {

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		slog.Debug("Discarding invalid session cookie", slog.Any("error", err))
		return "", false
	}

	if claims.BasketID == "" {
		return "", false
	}

	return claims.BasketID, true
}

func (s *Resolver) write(w http.ResponseWriter, basketID string) error {

	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		BasketID: basketID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

type contextKey struct{}

// Middleware resolves the basket id once per request and stores it in the request context.
func (s *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		basketID := s.BasketID(w, r)
		next.ServeHTTP(w, r.WithContext(WithBasketID(r.Context(), basketID)))
	})
}

func WithBasketID(ctx context.Context, basketID string) context.Context {
	return context.WithValue(ctx, contextKey{}, basketID)
}

func FromContext(ctx context.Context) (string, bool) {
	basketID, ok := ctx.Value(contextKey{}).(string)
	return basketID, ok && basketID != ""
}
