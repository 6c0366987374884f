package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the immutable record of a completed checkout. Everything except
// Status is frozen at creation: line snapshots, the shipping address and all
// three amounts. Orders are never deleted; cancellation is a status
// transition.
type Order struct {
	ID              uuid.UUID       // System-generated unique identifier.
	UserID          string          // Firebase UID of the owning customer.
	Lines           []CartLine      // Cart line snapshots, in cart display order.
	ShippingAddress ShippingAddress // Destination frozen at checkout.
	Subtotal        decimal.Decimal // Sum of line totals at creation time.
	ShippingFee     decimal.Decimal // Fee derived from the policy at creation time.
	GrandTotal      decimal.Decimal // Subtotal + ShippingFee; never recomputed.
	Status          OrderStatus     // The only mutable attribute post-creation.
	IdempotencyKey  string          // Optional client-supplied key deduplicating checkout retries.
	CreatedAt       time.Time       // Timestamp of order creation.
	UpdatedAt       time.Time       // Timestamp of the last status change.
}

// ItemCount sums the quantities over all frozen lines.
func (o *Order) ItemCount() int64 {
	var count int64
	for _, line := range o.Lines {
		count += line.Quantity
	}

	return count
}

// OwnedBy reports whether the order belongs to the given user.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID == userID
}
