package firestore

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type orderRepository struct {
	client *firestore.Client
}

// NewOrderRepository creates a new instance of an OrderRepository backed by
// Firestore.
func NewOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(collectionOrders)
}

// Create persists a new order. A single-document Create is atomic in
// Firestore, which is exactly the all-or-nothing guarantee checkout needs.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	_, err := r.collection().Doc(order.ID.String()).Create(ctx, model.FromOrderDomain(order))
	return translateError(err, repository.ErrOrderNotFound)
}

// FindByID retrieves a single order by its ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	doc, err := r.collection().Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, translateError(err, repository.ErrOrderNotFound)
	}

	return decodeOrder(doc)
}

// FindByIdempotencyKey retrieves the order a user previously created with the
// given key, or ErrOrderNotFound.
func (r *orderRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*entity.Order, error) {
	iter := r.collection().
		Where("userId", "==", userID).
		Where("idempotencyKey", "==", key).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, repository.ErrOrderNotFound
	}
	if err != nil {
		return nil, translateError(err, repository.ErrOrderNotFound)
	}

	return decodeOrder(doc)
}

// UpdateStatus performs the status check-and-set inside a Firestore
// transaction. Reading the current status and writing the next one in the
// same transaction keeps two racing admins from both winning; the loser's
// transaction retries against the new state and fails the graph check.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	docRef := r.collection().Doc(id.String())

	var updated model.OrderModel
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var m model.OrderModel
		if err := doc.DataTo(&m); err != nil {
			return err
		}

		current := entity.OrderStatus(m.Status)
		if !current.CanTransitionTo(next) {
			return repository.ErrIllegalTransition
		}

		now := time.Now().UTC()
		if err := tx.Update(docRef, []firestore.Update{
			{Path: "status", Value: next.String()},
			{Path: "updatedAt", Value: now},
		}); err != nil {
			return err
		}

		m.Status = next.String()
		m.UpdatedAt = now
		updated = m

		return nil
	})
	if err != nil {
		if err == repository.ErrIllegalTransition {
			return nil, err
		}

		return nil, translateError(err, repository.ErrOrderNotFound)
	}

	return model.ToOrderDomain(id.String(), &updated)
}

// ListByUser retrieves a user's orders sorted by creation time descending.
// Needs the (userId, createdAt desc) composite index.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	iter := r.collection().
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return collectOrders(iter)
}

// ListAll retrieves every order sorted by creation time descending.
func (r *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	iter := r.collection().
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	return collectOrders(iter)
}

func collectOrders(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err, repository.ErrOrderNotFound)
		}

		order, err := decodeOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func decodeOrder(doc *firestore.DocumentSnapshot) (*entity.Order, error) {
	var m model.OrderModel
	if err := doc.DataTo(&m); err != nil {
		return nil, translateError(err, repository.ErrOrderNotFound)
	}

	return model.ToOrderDomain(doc.Ref.ID, &m)
}
