package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to a cart.
type AddCartItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

// UpdateCartItemInput defines the data required to change a line quantity.
type UpdateCartItemInput struct {
	Quantity int64 `json:"quantity"`
}

// --- Output DTOs ---

// CartLineView is one cart line as presented to the client.
type CartLineView struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// CartView is the full cart presentation: lines in insertion order plus the
// derived totals.
type CartView struct {
	Lines       []CartLineView `json:"lines"`
	ItemCount   int64          `json:"itemCount"`
	Subtotal    string         `json:"subtotal"`
	ShippingFee string         `json:"shippingFee"`
	GrandTotal  string         `json:"grandTotal"`
}

// CartUsecase defines the cart operations available to one shopping session.
// All amounts in the returned views are derived from the frozen line
// snapshots and the configured shipping policy.
type CartUsecase interface {
	// View returns the session's cart, which may be empty.
	View(ctx context.Context, sessionID string) (*CartView, error)

	// AddItem adds a product to the cart, summing quantities when the line
	// already exists. The product snapshot is captured here.
	AddItem(ctx context.Context, sessionID string, input *AddCartItemInput) (*CartView, error)

	// UpdateQuantity replaces a line's quantity, clamping values below 1 to 1.
	UpdateQuantity(ctx context.Context, sessionID, productID string, input *UpdateCartItemInput) (*CartView, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context, sessionID string) error

	// Policy returns the shipping policy applied to every cart.
	Policy() entity.ShippingPolicy
}
