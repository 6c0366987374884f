package usecase

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// SaveProductInput defines the data for creating or updating a product.
type SaveProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageUrl"`
	Stock       *int64   `json:"stock" validate:"omitempty,gte=0"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// SaveCategoryInput defines the data for creating or updating a category.
type SaveCategoryInput struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

// SaveHeroImageInput defines the data for creating or updating a hero banner.
type SaveHeroImageInput struct {
	ImageURL     string `json:"imageUrl" validate:"required"`
	Headline     string `json:"headline"`
	LinkURL      string `json:"linkUrl"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// UploadImageInput carries one uploaded product image.
type UploadImageInput struct {
	ProductID   string
	Filename    string
	ContentType string
	Body        io.Reader
}

// AdminUsecase defines the administrative catalog operations. Every call is
// gated on the "admin" custom claim at the delivery layer; catalog edits are
// last-write-wins.
type AdminUsecase interface {
	CreateProduct(ctx context.Context, input *SaveProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, input *SaveProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// UploadProductImage stores the image and points the product at its URL.
	UploadProductImage(ctx context.Context, input *UploadImageInput) (*entity.Product, error)

	CreateCategory(ctx context.Context, input *SaveCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, input *SaveCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateHeroImage(ctx context.Context, input *SaveHeroImageInput) (*entity.HeroImage, error)
	UpdateHeroImage(ctx context.Context, id string, input *SaveHeroImageInput) (*entity.HeroImage, error)
	DeleteHeroImage(ctx context.Context, id string) error
}
