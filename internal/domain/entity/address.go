package entity

// ShippingAddress is the destination attached to an order at checkout.
// Once attached it is immutable; the "default" copy stored on a user profile
// is independent of any order's copy.
type ShippingAddress struct {
	FullName   string // Recipient full name.
	Email      string // Contact email; confirmation mail is sent here.
	Line1      string // Street address, required.
	Line2      string // Apartment / floor / unit, optional.
	City       string
	PostalCode string
	Country    string
}
