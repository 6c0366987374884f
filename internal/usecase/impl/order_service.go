package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	logger    *slog.Logger
	orderRepo repository.OrderRepository
	cartStore repository.CartStore
	policy    entity.ShippingPolicy
	notifier  usecase.OrderNotifier
	publisher service.EventPublisher
	qrSvc     service.QRCodeService
	now       func() time.Time
}

// NewOrderService creates a new order service instance
func NewOrderService(
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	cartStore repository.CartStore,
	cfg *config.Config,
	notifier usecase.OrderNotifier,
	publisher service.EventPublisher,
	qrSvc service.QRCodeService,
) (usecase.OrderUsecase, error) {
	policy, err := shippingPolicyFromConfig(cfg.Shipping)
	if err != nil {
		return nil, err
	}

	return &orderService{
		logger:    logger,
		orderRepo: orderRepo,
		cartStore: cartStore,
		policy:    policy,
		notifier:  notifier,
		publisher: publisher,
		qrSvc:     qrSvc,
		now:       time.Now,
	}, nil
}

// Checkout turns the session's cart into a persisted order.
// The sequence is strictly validate -> freeze -> persist; everything after
// the persist (cart clear, mail, event) is best-effort and never undoes the
// order.
func (s *orderService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*entity.Order, error) {
	// Checkout retries with the same key return the original order.
	if input.IdempotencyKey != "" {
		existing, err := s.orderRepo.FindByIdempotencyKey(ctx, input.UserID, input.IdempotencyKey)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return nil, storageError(err)
		}
	}

	cart, err := s.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrEmptyCart
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	subtotal := cart.Subtotal()
	fee := cart.ShippingFee(s.policy)

	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          input.UserID,
		Lines:           cart.Lines(),
		ShippingAddress: input.Address(),
		Subtotal:        subtotal,
		ShippingFee:     fee,
		GrandTotal:      subtotal.Add(fee),
		Status:          entity.OrderStatusPending,
		IdempotencyKey:  input.IdempotencyKey,
		CreatedAt:       s.now().UTC(),
	}
	order.UpdatedAt = order.CreatedAt

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, storageError(err)
	}

	if err := s.cartStore.Delete(ctx, input.SessionID); err != nil {
		s.logger.Warn("failed to clear cart after checkout",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	s.dispatchCreated(ctx, order)

	return order, nil
}

// dispatchCreated sends the confirmation mail and publishes the creation
// event. Failures are logged only; the order is already durable.
func (s *orderService) dispatchCreated(ctx context.Context, order *entity.Order) {
	if err := s.notifier.NotifyOrderCreated(ctx, order); err != nil {
		s.logger.Error("order confirmation mail failed",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err),
		)
	}

	s.publishEvent(ctx, service.OrderEventCreated, order)
}

func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		Type:    eventType,
		OrderID: order.ID.String(),
		UserID:  order.UserID,
		Status:  order.Status.String(),
		Total:   order.GrandTotal.StringFixed(2),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

// GetOrder retrieves one order; only its owner or an admin may read it.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID, actor usecase.Actor) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, storageError(err)
	}

	if !actor.Admin && !order.OwnedBy(actor.UID) {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

// ListOrders retrieves the actor's orders, newest first.
func (s *orderService) ListOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, actor.UID)
	if err != nil {
		return nil, storageError(err)
	}

	return orders, nil
}

// ListAllOrders retrieves every order, newest first. Admin only.
func (s *orderService) ListAllOrders(ctx context.Context, actor usecase.Actor) ([]*entity.Order, error) {
	if !actor.Admin {
		return nil, domainerrors.ErrForbidden
	}

	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}

	return orders, nil
}

// TransitionStatus moves an order along the lifecycle graph. Admin only.
func (s *orderService) TransitionStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, actor usecase.Actor) (*entity.Order, error) {
	if !actor.Admin {
		return nil, domainerrors.ErrForbidden
	}
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown order status: " + next.String())
	}

	order, err := s.orderRepo.UpdateStatus(ctx, orderID, next)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound
		case errors.Is(err, repository.ErrIllegalTransition):
			return nil, domainerrors.ErrIllegalTransition
		default:
			return nil, storageError(err)
		}
	}

	s.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// CancelOrder cancels a Pending or Processing order. Permitted for the
// order's owner and for admins.
func (s *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID, actor usecase.Actor) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, storageError(err)
	}

	if !actor.Admin && !order.OwnedBy(actor.UID) {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			return nil, domainerrors.ErrOrderNotFound
		case errors.Is(err, repository.ErrIllegalTransition):
			return nil, domainerrors.ErrOrderNotCancellable
		default:
			return nil, storageError(err)
		}
	}

	s.publishEvent(ctx, service.OrderEventStatusChanged, updated)

	return updated, nil
}

// OrderTrackingQR renders the tracking QR code for an order the actor may read.
func (s *orderService) OrderTrackingQR(ctx context.Context, orderID uuid.UUID, actor usecase.Actor) ([]byte, error) {
	order, err := s.GetOrder(ctx, orderID, actor)
	if err != nil {
		return nil, err
	}

	png, err := s.qrSvc.GenerateOrderQR(order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate order QR code")
	}

	return png, nil
}
