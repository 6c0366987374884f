// Package model contains the persistence representations of the domain
// entities, tagged for the document store. Mapping between a model and its
// entity happens only here, so document field names never leak upward.
package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductModel is the Firestore document for a catalog product. Money is
// stored as a decimal string to avoid float drift.
type ProductModel struct {
	Name        string    `firestore:"name"`
	Description string    `firestore:"description"`
	Price       string    `firestore:"price"`
	Category    string    `firestore:"category"`
	ImageURL    string    `firestore:"imageUrl"`
	Stock       *int64    `firestore:"stock,omitempty"`
	Rating      *float64  `firestore:"rating,omitempty"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// FromProductDomain maps a domain entity to its document form.
func FromProductDomain(product *entity.Product) *ProductModel {
	return &ProductModel{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.String(),
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		Rating:      product.Rating,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductDomain maps a document back to the domain entity.
func ToProductDomain(id string, m *ProductModel) (*entity.Product, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, errors.Wrapf(err, "product %s has malformed price %q", id, m.Price)
	}

	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		Stock:       m.Stock,
		Rating:      m.Rating,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
