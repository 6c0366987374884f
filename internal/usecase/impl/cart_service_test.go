package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cartstore"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartServiceForTest(t *testing.T) (usecase.CartUsecase, *mockRepo.MockProductRepository, *cartstore.MemoryCartStore) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	store := cartstore.NewMemoryCartStore(newTestConfig())
	t.Cleanup(func() { _ = store.Close() })

	svc, err := NewCartService(store, productRepo, newTestConfig())
	require.NoError(t, err)

	return svc, productRepo, store
}

func testProduct(id, name, price string) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestCartService_View_EmptyCart(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	view, err := svc.View(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, int64(0), view.ItemCount)
	assert.Equal(t, "0.00", view.Subtotal)
	assert.Equal(t, "0.00", view.ShippingFee)
	assert.Equal(t, "0.00", view.GrandTotal)
}

func TestCartService_AddItem(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(testProduct("p1", "Coffee", "10.00"), nil).
		Times(2)
	productRepo.EXPECT().
		FindByID(ctx, "p2").
		Return(testProduct("p2", "Tea", "5.00"), nil)

	view, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)

	view, err = svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p2", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)

	// Adding the same product again merges into the existing line.
	view, err = svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)

	assert.Equal(t, "p1", view.Lines[0].ProductID)
	assert.Equal(t, int64(2), view.Lines[0].Quantity)
	assert.Equal(t, "10.00", view.Lines[0].UnitPrice)
	assert.Equal(t, "20.00", view.Lines[0].LineTotal)
	assert.Equal(t, int64(3), view.ItemCount)
	assert.Equal(t, "25.00", view.Subtotal)
	assert.Equal(t, "0.00", view.ShippingFee)
	assert.Equal(t, "25.00", view.GrandTotal)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "ghost").
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "ghost", Quantity: 1})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(testProduct("p1", "Coffee", "10.00"), nil)

	_, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	view, err := svc.UpdateQuantity(ctx, "session-1", "p1", &usecase.UpdateCartItemInput{Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), view.Lines[0].Quantity)
	assert.Equal(t, "40.00", view.Subtotal)

	// Values below 1 are clamped, never treated as removal.
	view, err = svc.UpdateQuantity(ctx, "session-1", "p1", &usecase.UpdateCartItemInput{Quantity: 0})
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(1), view.Lines[0].Quantity)
}

func TestCartService_UpdateQuantity_LineNotFound(t *testing.T) {
	svc, _, _ := newCartServiceForTest(t)

	_, err := svc.UpdateQuantity(context.Background(), "session-1", "missing",
		&usecase.UpdateCartItemInput{Quantity: 2})
	assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(testProduct("p1", "Coffee", "10.00"), nil)

	_, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 1})
	require.NoError(t, err)

	view, err := svc.RemoveItem(ctx, "session-1", "p1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	// Removing an absent line is a no-op, not an error.
	view, err = svc.RemoveItem(ctx, "session-1", "p1")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}

func TestCartService_Clear(t *testing.T) {
	svc, productRepo, store := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(testProduct("p1", "Coffee", "10.00"), nil)

	_, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "session-1"))

	_, err = store.Get(ctx, "session-1")
	assert.ErrorIs(t, err, repository.ErrCartNotFound)
}

func TestCartService_SessionsAreIsolated(t *testing.T) {
	svc, productRepo, _ := newCartServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, "p1").
		Return(testProduct("p1", "Coffee", "10.00"), nil)

	_, err := svc.AddItem(ctx, "session-1", &usecase.AddCartItemInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	view, err := svc.View(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
}
