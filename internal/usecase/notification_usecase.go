package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderNotifier dispatches the confirmation for a freshly created order.
// Dispatch is best-effort and decoupled from order persistence: a delivery
// failure is logged and never rolls the order back.
type OrderNotifier interface {
	// NotifyOrderCreated composes and sends the confirmation mail for the
	// order. The error return exists for logging at the call site only.
	NotifyOrderCreated(ctx context.Context, order *entity.Order) error
}
