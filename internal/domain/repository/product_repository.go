package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// List retrieves all products.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product by its document ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces an existing product record.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id string) error
}
