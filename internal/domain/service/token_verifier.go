package service

import "context"

// Identity is the verified caller extracted from a platform ID token.
type Identity struct {
	UID   string
	Email string
	Admin bool // From the "admin" custom claim.
}

// TokenVerifier defines the interface for verifying identity-platform ID
// tokens. This abstracts the auth provider's SDK from the delivery layer.
type TokenVerifier interface {
	// Verify checks the token signature and expiry and returns the caller's
	// identity.
	Verify(ctx context.Context, idToken string) (*Identity, error)
}
