package entity

import "time"

// User is a customer profile keyed by the identity platform's UID. Identity
// itself (credentials, sessions) lives entirely in Firebase Auth; this record
// only carries storefront-owned data.
type User struct {
	UID            string           // Firebase Auth UID; also the document ID.
	Email          string           // Primary contact email.
	DisplayName    string           // Name shown in the account area.
	DefaultAddress *ShippingAddress // Default shipping address; nil until the user saves one.
	Admin          bool             // Mirrors the "admin" custom claim for admin-surface checks.
	CreatedAt      time.Time        // Timestamp of when this profile was created.
	UpdatedAt      time.Time        // Timestamp of the last modification.
}
