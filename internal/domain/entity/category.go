package entity

import "time"

// Category is a named grouping used to organize products in the storefront.
// Listings order categories by (DisplayOrder asc, Name asc).
type Category struct {
	ID           string    // The unique identifier (Firestore document ID).
	Name         string    // Display name, also used as the products' grouping label.
	DisplayOrder int       // Explicit position in storefront navigation.
	CreatedAt    time.Time // Timestamp of when this category was created.
	UpdatedAt    time.Time // Timestamp of the last administrative edit.
}
