package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// HeroImageModel is the Firestore document for a promotional banner.
type HeroImageModel struct {
	ImageURL     string    `firestore:"imageUrl"`
	Headline     string    `firestore:"headline"`
	LinkURL      string    `firestore:"linkUrl"`
	IsActive     bool      `firestore:"isActive"`
	DisplayOrder int       `firestore:"displayOrder"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// FromHeroImageDomain maps a domain entity to its document form.
func FromHeroImageDomain(image *entity.HeroImage) *HeroImageModel {
	return &HeroImageModel{
		ImageURL:     image.ImageURL,
		Headline:     image.Headline,
		LinkURL:      image.LinkURL,
		IsActive:     image.IsActive,
		DisplayOrder: image.DisplayOrder,
		CreatedAt:    image.CreatedAt,
		UpdatedAt:    image.UpdatedAt,
	}
}

// ToHeroImageDomain maps a document back to the domain entity.
func ToHeroImageDomain(id string, m *HeroImageModel) *entity.HeroImage {
	return &entity.HeroImage{
		ID:           id,
		ImageURL:     m.ImageURL,
		Headline:     m.Headline,
		LinkURL:      m.LinkURL,
		IsActive:     m.IsActive,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
