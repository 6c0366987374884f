package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound is a domain-specific error returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")

	// ErrIllegalTransition is returned when a status change has no edge in
	// the lifecycle graph.
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order atomically: either the whole record is
	// visible to readers or nothing is. Returns ErrAlreadyExists when the
	// document ID is taken.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIdempotencyKey retrieves the order a user previously created
	// with the given key, or ErrOrderNotFound.
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Order, error)

	// UpdateStatus performs an atomic check-and-set of the status field: the
	// current status is read, the lifecycle graph consulted, and the new
	// status written, all inside one storage transaction. Returns the
	// updated order, or ErrIllegalTransition.
	UpdateStatus(ctx context.Context, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// ListByUser retrieves a user's orders sorted by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAll retrieves every order sorted by creation time descending.
	// Administrative use only.
	ListAll(ctx context.Context) ([]*entity.Order, error)
}
