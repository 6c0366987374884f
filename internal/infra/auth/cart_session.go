// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"storefront/config"
	"storefront/internal/domain/service"
)

const defaultCartSessionTTL = time.Hour * 24 * 7

// cartSessionService is a concrete implementation of the CartSessionService
// interface using the JWT standard. The token carries only the session ID;
// the cart contents live server-side.
type cartSessionService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
}

// NewCartSessionService is the constructor for cartSessionService.
func NewCartSessionService(cfg *config.Config) (service.CartSessionService, error) {
	if cfg.CartSession.Secret == "" {
		return nil, errors.New("cart session secret must be provided")
	}

	ttl := cfg.CartSession.TTL
	if ttl <= 0 {
		ttl = defaultCartSessionTTL
	}

	return &cartSessionService{
		secret: []byte(cfg.CartSession.Secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a new session and returns its signed token and session ID.
func (s *cartSessionService) Issue() (string, string, error) {
	sessionID := uuid.NewString()

	claims := jwt.MapClaims{
		"sub": sessionID,                    // Subject (the cart session)
		"iat": time.Now().Unix(),            // Issued At
		"exp": time.Now().Add(s.ttl).Unix(), // Expiration Time
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to sign cart session token")
	}

	return token, sessionID, nil
}

// Verify checks the token signature and expiry and returns the session ID.
func (s *cartSessionService) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "invalid cart session token")
	}

	sessionID, err := token.Claims.GetSubject()
	if err != nil || sessionID == "" {
		return "", errors.New("cart session token has no subject")
	}

	return sessionID, nil
}
