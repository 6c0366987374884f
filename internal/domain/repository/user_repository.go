package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user profile persistence.
type UserRepository interface {
	// FindByUID retrieves a single profile by the identity platform UID.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// Save creates or replaces a profile record.
	Save(ctx context.Context, user *entity.User) error

	// SaveDefaultAddress stores the user's default shipping address,
	// creating the profile document when absent.
	SaveDefaultAddress(ctx context.Context, uid string, address *entity.ShippingAddress) error
}
