package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SaveAddressInput defines the data required to store a default shipping
// address on a user profile. It is independent of any order's frozen copy.
type SaveAddressInput struct {
	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// ProfileUsecase defines account-area operations for a signed-in customer.
type ProfileUsecase interface {
	// GetProfile retrieves the caller's profile, creating a bare record on
	// first access.
	GetProfile(ctx context.Context, identity Actor, email, displayName string) (*entity.User, error)

	// SaveDefaultAddress stores the caller's default shipping address.
	SaveDefaultAddress(ctx context.Context, uid string, input *SaveAddressInput) (*entity.ShippingAddress, error)
}
