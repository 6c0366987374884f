package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type profileService struct {
	userRepo repository.UserRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(userRepo repository.UserRepository) usecase.ProfileUsecase {
	return &profileService{userRepo: userRepo}
}

// GetProfile retrieves the caller's profile, creating a bare record on first
// access so the account area always has something to render.
func (s *profileService) GetProfile(ctx context.Context, identity usecase.Actor, email, displayName string) (*entity.User, error) {
	user, err := s.userRepo.FindByUID(ctx, identity.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, storageError(err)
	}

	now := time.Now().UTC()
	user = &entity.User{
		UID:         identity.UID,
		Email:       email,
		DisplayName: displayName,
		Admin:       identity.Admin,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, storageError(err)
	}

	return user, nil
}

// SaveDefaultAddress stores the caller's default shipping address. The copy
// is independent of any order's frozen address.
func (s *profileService) SaveDefaultAddress(ctx context.Context, uid string, input *usecase.SaveAddressInput) (*entity.ShippingAddress, error) {
	address := &entity.ShippingAddress{
		FullName:   input.FullName,
		Email:      input.Email,
		Line1:      input.Line1,
		Line2:      input.Line2,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	}

	if err := s.userRepo.SaveDefaultAddress(ctx, uid, address); err != nil {
		return nil, storageError(err)
	}

	return address, nil
}
