package entity

import "time"

// HeroImage is a promotional banner shown on the storefront landing page.
// Only active banners are listed, ordered by DisplayOrder asc.
type HeroImage struct {
	ID           string    // The unique identifier (Firestore document ID).
	ImageURL     string    // Public URL of the banner image.
	Headline     string    // Short promotional text overlaid on the banner.
	LinkURL      string    // Where the banner links to, e.g. a category page.
	IsActive     bool      // Inactive banners are kept but never listed.
	DisplayOrder int       // Explicit position in the banner carousel.
	CreatedAt    time.Time // Timestamp of when this banner was created.
	UpdatedAt    time.Time // Timestamp of the last administrative edit.
}
