// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogUsecase defines the read-only storefront view of the catalog.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CatalogUsecase interface {
	// ListProducts retrieves every product in the catalog.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct retrieves one product by ID.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// ListCategories retrieves categories ordered by (displayOrder asc, name asc).
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListHeroImages retrieves active banners ordered by displayOrder asc.
	ListHeroImages(ctx context.Context) ([]*entity.HeroImage, error)
}
