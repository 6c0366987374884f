package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrHeroImageNotFound is a domain-specific error returned when a hero image is not found.
var ErrHeroImageNotFound = errors.New("hero image not found")

// HeroImageRepository defines the standard operations for hero banner persistence.
type HeroImageRepository interface {
	// ListActive retrieves active banners ordered by displayOrder asc.
	ListActive(ctx context.Context) ([]*entity.HeroImage, error)

	// Create persists a new banner.
	Create(ctx context.Context, image *entity.HeroImage) error

	// Update replaces an existing banner record.
	Update(ctx context.Context, image *entity.HeroImage) error

	// Delete removes a banner.
	Delete(ctx context.Context, id string) error
}
