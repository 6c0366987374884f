package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// Actor identifies who is performing an order operation.
type Actor struct {
	UID   string
	Admin bool
}

// CheckoutInput defines the data required to turn a cart into an order.
type CheckoutInput struct {
	SessionID string
	UserID    string

	// IdempotencyKey deduplicates checkout retries: a second call with the
	// same key returns the order the first call created.
	IdempotencyKey string

	FullName   string `json:"fullName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// Address builds the shipping address snapshot from the validated input.
func (in *CheckoutInput) Address() entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   in.FullName,
		Email:      in.Email,
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
	}
}

// TransitionStatusInput defines the data for an admin status change.
type TransitionStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderUsecase defines the order lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OrderUsecase interface {
	// Checkout validates the cart is non-empty, freezes the line snapshots
	// and totals, persists the order atomically with status Pending and
	// clears the cart. Confirmation mail and the order event are dispatched
	// best-effort after the order is durable.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// GetOrder retrieves one order; only its owner or an admin may read it.
	GetOrder(ctx context.Context, orderID uuid.UUID, actor Actor) (*entity.Order, error)

	// ListOrders retrieves the actor's orders, newest first.
	ListOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// ListAllOrders retrieves every order, newest first. Admin only.
	ListAllOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)

	// TransitionStatus moves an order along the lifecycle graph. Admin only;
	// illegal edges are rejected.
	TransitionStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, actor Actor) (*entity.Order, error)

	// CancelOrder cancels a Pending or Processing order. Permitted for the
	// order's owner and for admins.
	CancelOrder(ctx context.Context, orderID uuid.UUID, actor Actor) (*entity.Order, error)

	// OrderTrackingQR renders the tracking QR code for an order the actor
	// may read.
	OrderTrackingQR(ctx context.Context, orderID uuid.UUID, actor Actor) ([]byte, error)
}
