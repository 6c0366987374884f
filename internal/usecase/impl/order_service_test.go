package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/cartstore"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orderRepo *mockRepo.MockOrderRepository
	cartStore *cartstore.MemoryCartStore
	notifier  *mockUC.MockOrderNotifier
	publisher *mockSvc.MockEventPublisher
	qrSvc     *mockSvc.MockQRCodeService
}

func newOrderServiceForTest(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	mocks := &orderServiceMocks{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		cartStore: cartstore.NewMemoryCartStore(newTestConfig()),
		notifier:  mockUC.NewMockOrderNotifier(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		qrSvc:     mockSvc.NewMockQRCodeService(t),
	}
	t.Cleanup(func() { _ = mocks.cartStore.Close() })

	svc, err := NewOrderService(
		newDiscardLogger(),
		mocks.orderRepo,
		mocks.cartStore,
		newTestConfig(),
		mocks.notifier,
		mocks.publisher,
		mocks.qrSvc,
	)
	require.NoError(t, err)

	return svc, mocks
}

func seedCart(t *testing.T, store *cartstore.MemoryCartStore, sessionID string) *entity.Cart {
	t.Helper()

	cart, err := store.GetOrCreate(context.Background(), sessionID)
	require.NoError(t, err)
	cart.AddItem(entity.ProductSnapshot{
		ProductID: "p1",
		Name:      "Coffee",
		Price:     decimal.RequireFromString("10.00"),
	}, 2)
	cart.AddItem(entity.ProductSnapshot{
		ProductID: "p2",
		Name:      "Tea",
		Price:     decimal.RequireFromString("5.00"),
	}, 1)

	return cart
}

func checkoutInput(sessionID, userID string) *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		SessionID:  sessionID,
		UserID:     userID,
		FullName:   "王小明",
		Email:      "buyer@example.com",
		Line1:      "中山路 100 號",
		City:       "台北市",
		PostalCode: "104",
		Country:    "TW",
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	seedCart(t, mocks.cartStore, "session-1")

	var created *entity.Order
	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { created = order }).
		Return(nil)

	mocks.notifier.EXPECT().
		NotifyOrderCreated(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventCreated && event.Total == "25.00"
		})).
		Return(nil)

	order, err := svc.Checkout(ctx, checkoutInput("session-1", "user-1"))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Same(t, created, order)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "25.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "25.00", order.GrandTotal.StringFixed(2))
	require.Len(t, order.Lines, 2)
	assert.Equal(t, "p1", order.Lines[0].Product.ProductID)
	assert.Equal(t, int64(2), order.Lines[0].Quantity)
	assert.Equal(t, "王小明", order.ShippingAddress.FullName)
	assert.Equal(t, order.CreatedAt, order.UpdatedAt)

	// The session's cart is gone after a successful checkout.
	_, err = mocks.cartStore.Get(ctx, "session-1")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestOrderService_Checkout_FlatRateBelowThreshold(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()

	cart, err := mocks.cartStore.GetOrCreate(ctx, "session-1")
	require.NoError(t, err)
	cart.AddItem(entity.ProductSnapshot{
		ProductID: "p2",
		Name:      "Tea",
		Price:     decimal.RequireFromString("5.00"),
	}, 2)

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	mocks.notifier.EXPECT().
		NotifyOrderCreated(ctx, mock.Anything).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		Return(nil)

	order, err := svc.Checkout(ctx, checkoutInput("session-1", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, "10.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "5.00", order.ShippingFee.StringFixed(2))
	assert.Equal(t, "15.00", order.GrandTotal.StringFixed(2))
}

func TestOrderService_Checkout_NoCart(t *testing.T) {
	svc, _ := newOrderServiceForTest(t)

	_, err := svc.Checkout(context.Background(), checkoutInput("no-such-session", "user-1"))
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()

	_, err := mocks.cartStore.GetOrCreate(ctx, "session-1")
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, checkoutInput("session-1", "user-1"))
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_Checkout_IdempotencyKeyReturnsExistingOrder(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	seedCart(t, mocks.cartStore, "session-1")

	existing := &entity.Order{
		ID:     uuid.New(),
		UserID: "user-1",
		Status: entity.OrderStatusPending,
	}

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, "user-1", "key-1").
		Return(existing, nil)

	input := checkoutInput("session-1", "user-1")
	input.IdempotencyKey = "key-1"

	order, err := svc.Checkout(ctx, input)
	require.NoError(t, err)
	assert.Same(t, existing, order)

	// The cart is untouched: nothing was created on this call.
	cart, err := mocks.cartStore.Get(ctx, "session-1")
	require.NoError(t, err)
	assert.False(t, cart.IsEmpty())
}

func TestOrderService_Checkout_IdempotencyKeyUnseenProceeds(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	seedCart(t, mocks.cartStore, "session-1")

	mocks.orderRepo.EXPECT().
		FindByIdempotencyKey(ctx, "user-1", "key-1").
		Return(nil, repository.ErrOrderNotFound)
	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	mocks.notifier.EXPECT().
		NotifyOrderCreated(ctx, mock.Anything).
		Return(nil)
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		Return(nil)

	input := checkoutInput("session-1", "user-1")
	input.IdempotencyKey = "key-1"

	order, err := svc.Checkout(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "key-1", order.IdempotencyKey)
}

func TestOrderService_Checkout_DispatchFailuresDoNotFailCheckout(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	seedCart(t, mocks.cartStore, "session-1")

	mocks.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	mocks.notifier.EXPECT().
		NotifyOrderCreated(ctx, mock.Anything).
		Return(errors.New("smtp unreachable"))
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.Anything).
		Return(errors.New("broker down"))

	order, err := svc.Checkout(ctx, checkoutInput("session-1", "user-1"))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_GetOrder_OwnerAndAdmin(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()

	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusPending}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(stored, nil).
		Times(3)

	order, err := svc.GetOrder(ctx, orderID, usecase.Actor{UID: "user-1"})
	require.NoError(t, err)
	assert.Same(t, stored, order)

	order, err = svc.GetOrder(ctx, orderID, usecase.Actor{UID: "someone-else", Admin: true})
	require.NoError(t, err)
	assert.Same(t, stored, order)

	_, err = svc.GetOrder(ctx, orderID, usecase.Actor{UID: "someone-else"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := svc.GetOrder(ctx, orderID, usecase.Actor{UID: "user-1"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_CancelOrder_Owner(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	stored := &entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusPending}
	cancelled := &entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusCancelled}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(stored, nil)
	mocks.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).
		Return(cancelled, nil)
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventStatusChanged &&
				event.Status == entity.OrderStatusCancelled.String()
		})).
		Return(nil)

	order, err := svc.CancelOrder(ctx, orderID, usecase.Actor{UID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_CancelOrder_NotOwner(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusPending}, nil)

	_, err := svc.CancelOrder(ctx, orderID, usecase.Actor{UID: "intruder"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}

func TestOrderService_CancelOrder_AlreadyShipped(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusShipped}, nil)
	mocks.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).
		Return(nil, repository.ErrIllegalTransition)

	_, err := svc.CancelOrder(ctx, orderID, usecase.Actor{UID: "user-1"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_TransitionStatus_AdminOnly(t *testing.T) {
	svc, _ := newOrderServiceForTest(t)

	_, err := svc.TransitionStatus(context.Background(), uuid.New(),
		entity.OrderStatusProcessing, usecase.Actor{UID: "user-1"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_TransitionStatus_UnknownStatus(t *testing.T) {
	svc, _ := newOrderServiceForTest(t)

	_, err := svc.TransitionStatus(context.Background(), uuid.New(),
		entity.OrderStatus("refunded"), usecase.Actor{UID: "admin", Admin: true})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_TransitionStatus_Success(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	updated := &entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusProcessing}

	mocks.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusProcessing).
		Return(updated, nil)
	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == service.OrderEventStatusChanged &&
				event.OrderID == orderID.String()
		})).
		Return(nil)

	order, err := svc.TransitionStatus(ctx, orderID, entity.OrderStatusProcessing,
		usecase.Actor{UID: "admin", Admin: true})
	require.NoError(t, err)
	assert.Same(t, updated, order)
}

func TestOrderService_TransitionStatus_IllegalEdge(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusDelivered).
		Return(nil, repository.ErrIllegalTransition)

	_, err := svc.TransitionStatus(ctx, orderID, entity.OrderStatusDelivered,
		usecase.Actor{UID: "admin", Admin: true})
	assert.ErrorIs(t, err, domainerrors.ErrIllegalTransition)
}

func TestOrderService_ListOrders(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()

	orders := []*entity.Order{
		{ID: uuid.New(), UserID: "user-1"},
		{ID: uuid.New(), UserID: "user-1"},
	}

	mocks.orderRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return(orders, nil)

	got, err := svc.ListOrders(ctx, usecase.Actor{UID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_ListAllOrders_AdminOnly(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()

	_, err := svc.ListAllOrders(ctx, usecase.Actor{UID: "user-1"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	orders := []*entity.Order{{ID: uuid.New(), UserID: "user-1"}}
	mocks.orderRepo.EXPECT().
		ListAll(ctx).
		Return(orders, nil)

	got, err := svc.ListAllOrders(ctx, usecase.Actor{UID: "admin", Admin: true})
	require.NoError(t, err)
	assert.Equal(t, orders, got)
}

func TestOrderService_OrderTrackingQR(t *testing.T) {
	svc, mocks := newOrderServiceForTest(t)
	ctx := context.Background()
	orderID := uuid.New()

	stored := &entity.Order{ID: orderID, UserID: "user-1", Status: entity.OrderStatusShipped}
	png := []byte{0x89, 'P', 'N', 'G'}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(stored, nil).
		Times(2)
	mocks.qrSvc.EXPECT().
		GenerateOrderQR(orderID).
		Return(png, nil)

	got, err := svc.OrderTrackingQR(ctx, orderID, usecase.Actor{UID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = svc.OrderTrackingQR(ctx, orderID, usecase.Actor{UID: "intruder"})
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
}
