// Package middleware contains the Echo middleware for the HTTP delivery.
package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyIdentity is the Echo context key carrying the verified caller.
const ContextKeyIdentity = "identity"

// AuthMiddleware provides middleware for platform ID token authentication
// and authorization.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate is the core middleware function that validates the Bearer ID
// token and puts the caller's identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		identity, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyIdentity, identity)

		return next(c)
	}
}

// RequireAdmin checks the "admin" custom claim on the verified identity.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := c.Get(ContextKeyIdentity).(*service.Identity)
		if !ok {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: identity missing")
		}

		if !identity.Admin {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require admin claim")
		}

		return next(c)
	}
}

// IdentityFromContext returns the verified caller set by Authenticate.
func IdentityFromContext(c echo.Context) (*service.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(*service.Identity)

	return identity, ok
}
