// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. It is owned by the catalog and only
// mutated through administrative operations; carts and orders keep their own
// frozen snapshots of it.
type Product struct {
	ID          string          // The unique, stable identifier (Firestore document ID).
	Name        string          // Display name shown in listings and carts.
	Description string          // Long-form description for the product page.
	Price       decimal.Decimal // Unit price; always positive.
	Category    string          // The grouping label this product is listed under.
	ImageURL    string          // Public URL of the product image.
	Stock       *int64          // Remaining stock count; nil when unknown/untracked.
	Rating      *float64        // Average customer rating; nil when unrated.
	CreatedAt   time.Time       // Timestamp of when this product was created.
	UpdatedAt   time.Time       // Timestamp of the last administrative edit.
}

// Snapshot freezes the fields a cart line needs at add-time. Later price
// edits to the catalog record must not reach through to existing carts.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
	}
}

// ProductSnapshot is the immutable view of a product captured by a cart line.
type ProductSnapshot struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	ImageURL  string
}
