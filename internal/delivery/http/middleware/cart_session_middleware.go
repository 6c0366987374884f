package middleware

import (
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CartSessionHeader carries the signed cart session token in both directions.
const CartSessionHeader = "X-Cart-Session"

// ContextKeyCartSession is the Echo context key carrying the session ID.
const ContextKeyCartSession = "cartSessionID"

// CartSessionMiddleware binds requests to a cart session. Cart routes mint a
// session when the client has none yet; checkout requires one to exist.
type CartSessionMiddleware struct {
	sessions service.CartSessionService
}

// NewCartSessionMiddleware is the constructor for CartSessionMiddleware.
func NewCartSessionMiddleware(sessions service.CartSessionService) *CartSessionMiddleware {
	return &CartSessionMiddleware{sessions: sessions}
}

// Attach resolves the session token, minting a fresh session when the header
// is absent. The token (new or echoed) is always returned in the response
// header so clients only need to persist that one value.
func (m *CartSessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(CartSessionHeader)

		var sessionID string
		if token == "" {
			var err error
			token, sessionID, err = m.sessions.Issue()
			if err != nil {
				return err
			}
		} else {
			var err error
			sessionID, err = m.sessions.Verify(token)
			if err != nil {
				return domainerrors.ErrCartSessionInvalid
			}
		}

		c.Response().Header().Set(CartSessionHeader, token)
		c.Set(ContextKeyCartSession, sessionID)

		return next(c)
	}
}

// Require resolves the session token without minting. A missing or bad token
// fails the request; checkout against a session that never existed makes no
// sense.
func (m *CartSessionMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := c.Request().Header.Get(CartSessionHeader)
		if token == "" {
			return domainerrors.ErrCartSessionInvalid
		}

		sessionID, err := m.sessions.Verify(token)
		if err != nil {
			return domainerrors.ErrCartSessionInvalid
		}

		c.Set(ContextKeyCartSession, sessionID)

		return next(c)
	}
}

// CartSessionFromContext returns the session ID set by Attach or Require.
func CartSessionFromContext(c echo.Context) (string, bool) {
	sessionID, ok := c.Get(ContextKeyCartSession).(string)

	return sessionID, ok
}
