package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

type catalogService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	heroImageRepo repository.HeroImageRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	heroImageRepo repository.HeroImageRepository,
) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		heroImageRepo: heroImageRepo,
	}
}

// ListProducts retrieves every product in the catalog.
func (s *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	return products, nil
}

// GetProduct retrieves one product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, storageError(err)
	}

	return product, nil
}

// ListCategories retrieves categories ordered by (displayOrder asc, name asc).
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	return categories, nil
}

// ListHeroImages retrieves active banners ordered by displayOrder asc.
func (s *catalogService) ListHeroImages(ctx context.Context) ([]*entity.HeroImage, error) {
	images, err := s.heroImageRepo.ListActive(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	return images, nil
}
