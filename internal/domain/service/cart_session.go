package service

// CartSessionService defines the interface for minting and verifying the
// signed tokens that bind a guest cart to a browsing session.
type CartSessionService interface {
	// Issue creates a new session and returns its signed token together
	// with the session ID embedded in it.
	Issue() (token string, sessionID string, err error)

	// Verify checks the token signature and expiry and returns the session ID.
	Verify(token string) (sessionID string, err error)
}
