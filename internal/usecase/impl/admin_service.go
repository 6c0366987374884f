package impl

import (
	"context"
	"fmt"
	"path"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type adminService struct {
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	heroImageRepo repository.HeroImageRepository
	imageStore    service.ImageStore
	now           func() time.Time
}

// NewAdminService creates a new admin catalog service instance
func NewAdminService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	heroImageRepo repository.HeroImageRepository,
	imageStore service.ImageStore,
) usecase.AdminUsecase {
	return &adminService{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		heroImageRepo: heroImageRepo,
		imageStore:    imageStore,
		now:           time.Now,
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("invalid price %q", raw))
	}
	if !price.IsPositive() {
		return decimal.Decimal{}, domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}

	return price, nil
}

// CreateProduct adds a new product to the catalog.
func (s *adminService) CreateProduct(ctx context.Context, input *usecase.SaveProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		Rating:      input.Rating,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, storageError(err)
	}

	return product, nil
}

// UpdateProduct replaces an existing product. Catalog edits are
// last-write-wins; open carts keep their snapshots.
func (s *adminService) UpdateProduct(ctx context.Context, id string, input *usecase.SaveProductInput) (*entity.Product, error) {
	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, storageError(err)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = price
	product.Category = input.Category
	if input.ImageURL != "" {
		product.ImageURL = input.ImageURL
	}
	product.Stock = input.Stock
	product.Rating = input.Rating
	product.UpdatedAt = s.now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, storageError(err)
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return storageError(err)
	}

	return nil
}

// UploadProductImage stores the image and points the product at its URL.
func (s *adminService) UploadProductImage(ctx context.Context, input *usecase.UploadImageInput) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, storageError(err)
	}

	key := fmt.Sprintf("products/%s/%d%s", product.ID, s.now().UnixNano(), path.Ext(input.Filename))
	url, err := s.imageStore.Upload(ctx, key, input.ContentType, input.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload product image")
	}

	product.ImageURL = url
	product.UpdatedAt = s.now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, storageError(err)
	}

	return product, nil
}

// CreateCategory adds a new grouping.
func (s *adminService) CreateCategory(ctx context.Context, input *usecase.SaveCategoryInput) (*entity.Category, error) {
	now := s.now().UTC()
	category := &entity.Category{
		ID:           uuid.NewString(),
		Name:         input.Name,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, storageError(err)
	}

	return category, nil
}

// UpdateCategory replaces an existing grouping.
func (s *adminService) UpdateCategory(ctx context.Context, id string, input *usecase.SaveCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:           id,
		Name:         input.Name,
		DisplayOrder: input.DisplayOrder,
		UpdatedAt:    s.now().UTC(),
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, storageError(err)
	}

	return category, nil
}

// DeleteCategory removes a grouping.
func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return storageError(err)
	}

	return nil
}

// CreateHeroImage adds a new banner.
func (s *adminService) CreateHeroImage(ctx context.Context, input *usecase.SaveHeroImageInput) (*entity.HeroImage, error) {
	now := s.now().UTC()
	image := &entity.HeroImage{
		ID:           uuid.NewString(),
		ImageURL:     input.ImageURL,
		Headline:     input.Headline,
		LinkURL:      input.LinkURL,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.heroImageRepo.Create(ctx, image); err != nil {
		return nil, storageError(err)
	}

	return image, nil
}

// UpdateHeroImage replaces an existing banner.
func (s *adminService) UpdateHeroImage(ctx context.Context, id string, input *usecase.SaveHeroImageInput) (*entity.HeroImage, error) {
	image := &entity.HeroImage{
		ID:           id,
		ImageURL:     input.ImageURL,
		Headline:     input.Headline,
		LinkURL:      input.LinkURL,
		IsActive:     input.IsActive,
		DisplayOrder: input.DisplayOrder,
		UpdatedAt:    s.now().UTC(),
	}

	if err := s.heroImageRepo.Update(ctx, image); err != nil {
		if errors.Is(err, repository.ErrHeroImageNotFound) {
			return nil, domainerrors.ErrHeroImageNotFound
		}

		return nil, storageError(err)
	}

	return image, nil
}

// DeleteHeroImage removes a banner.
func (s *adminService) DeleteHeroImage(ctx context.Context, id string) error {
	if err := s.heroImageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHeroImageNotFound) {
			return domainerrors.ErrHeroImageNotFound
		}

		return storageError(err)
	}

	return nil
}
