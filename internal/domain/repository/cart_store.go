package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCartNotFound is returned when no cart exists for the session.
var ErrCartNotFound = errors.New("cart not found")

// CartStore holds the live cart of each shopping session. The design does
// not require durability across restarts; an in-memory implementation is
// sufficient, but the contract leaves room for a client-local or external
// store.
type CartStore interface {
	// GetOrCreate returns the session's cart, creating an empty one first
	// when absent.
	GetOrCreate(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Get returns the session's cart or ErrCartNotFound.
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)

	// Delete drops the session's cart. Deleting an absent cart is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
