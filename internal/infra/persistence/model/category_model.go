package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// CategoryModel is the Firestore document for a storefront grouping.
type CategoryModel struct {
	Name         string    `firestore:"name"`
	DisplayOrder int       `firestore:"displayOrder"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// FromCategoryDomain maps a domain entity to its document form.
func FromCategoryDomain(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Name:         category.Name,
		DisplayOrder: category.DisplayOrder,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

// ToCategoryDomain maps a document back to the domain entity.
func ToCategoryDomain(id string, m *CategoryModel) *entity.Category {
	return &entity.Category{
		ID:           id,
		Name:         m.Name,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
