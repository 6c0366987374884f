package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id, name, price string) ProductSnapshot {
	return ProductSnapshot{
		ProductID: id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
	}
}

func TestCart_AddItem_ClampsQuantityBelowOne(t *testing.T) {
	cart := NewCart()

	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 0)
	cart.AddItem(snapshot("p2", "Tea", "5.00"), -3)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Quantity)
	assert.Equal(t, int64(1), lines[1].Quantity)
}

func TestCart_AddItem_SumsQuantitiesForSameProduct(t *testing.T) {
	cart := NewCart()

	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 2)
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 3)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(5), lines[0].Quantity)
	assert.Equal(t, int64(5), cart.ItemCount())
}

func TestCart_AddItem_KeepsOriginalSnapshotOnMerge(t *testing.T) {
	cart := NewCart()

	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 1)
	// A later add after a catalog price edit must not change the line price.
	cart.AddItem(snapshot("p1", "Coffee", "12.00"), 1)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "10.00", lines[0].Product.Price.StringFixed(2))
	assert.Equal(t, "20.00", cart.Subtotal().StringFixed(2))
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 2)

	require.True(t, cart.UpdateQuantity("p1", 7))
	assert.Equal(t, int64(7), cart.Lines()[0].Quantity)

	// Quantities below 1 are clamped; the line survives.
	require.True(t, cart.UpdateQuantity("p1", 0))
	assert.Equal(t, int64(1), cart.Lines()[0].Quantity)
	assert.False(t, cart.IsEmpty())

	assert.False(t, cart.UpdateQuantity("missing", 3))
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 1)
	cart.AddItem(snapshot("p2", "Tea", "5.00"), 1)
	cart.AddItem(snapshot("p3", "Cocoa", "7.50"), 1)

	cart.RemoveItem("p2")

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].Product.ProductID)
	assert.Equal(t, "p3", lines[1].Product.ProductID)

	// Removing an absent product is a no-op.
	cart.RemoveItem("p2")
	assert.Len(t, cart.Lines(), 2)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Lines())
	assert.Equal(t, int64(0), cart.ItemCount())
	assert.Equal(t, "0.00", cart.Subtotal().StringFixed(2))
}

func TestCart_LinesPreserveInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.AddItem(snapshot("p3", "Cocoa", "7.50"), 1)
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 1)
	cart.AddItem(snapshot("p2", "Tea", "5.00"), 1)
	// Re-adding an existing product must not move it to the back.
	cart.AddItem(snapshot("p3", "Cocoa", "7.50"), 1)

	ids := make([]string, 0, 3)
	for _, line := range cart.Lines() {
		ids = append(ids, line.Product.ProductID)
	}

	assert.Equal(t, []string{"p3", "p1", "p2"}, ids)
}

func TestCart_TotalsIdentity(t *testing.T) {
	policy := ShippingPolicy{
		FreeThreshold: decimal.NewFromInt(100),
		FlatRate:      decimal.NewFromInt(5),
	}

	cart := NewCart()
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 2)
	cart.AddItem(snapshot("p2", "Tea", "5.00"), 1)
	cart.AddItem(snapshot("p3", "Cocoa", "7.25"), 3)

	subtotal := decimal.Zero
	for _, line := range cart.Lines() {
		subtotal = subtotal.Add(line.LineTotal())
	}

	assert.True(t, cart.Subtotal().Equal(subtotal))
	assert.True(t, cart.GrandTotal(policy).Equal(cart.Subtotal().Add(cart.ShippingFee(policy))))
}

func TestShippingPolicy_FeeFor(t *testing.T) {
	policy := ShippingPolicy{
		FreeThreshold: decimal.NewFromInt(20),
		FlatRate:      decimal.NewFromInt(5),
	}

	// An empty cart ships nothing and pays nothing.
	assert.True(t, policy.FeeFor(decimal.Zero, 0).IsZero())

	// Below the threshold the flat rate applies.
	assert.Equal(t, "5.00", policy.FeeFor(decimal.RequireFromString("19.99"), 2).StringFixed(2))

	// At and above the threshold shipping is free.
	assert.True(t, policy.FeeFor(decimal.NewFromInt(20), 2).IsZero())
	assert.True(t, policy.FeeFor(decimal.RequireFromString("125.50"), 9).IsZero())
}

func TestCart_CheckoutScenarioTotals(t *testing.T) {
	policy := ShippingPolicy{
		FreeThreshold: decimal.NewFromInt(20),
		FlatRate:      decimal.NewFromInt(5),
	}

	cart := NewCart()
	cart.AddItem(snapshot("p1", "Coffee", "10.00"), 2)
	cart.AddItem(snapshot("p2", "Tea", "5.00"), 1)

	assert.Equal(t, int64(3), cart.ItemCount())
	assert.Equal(t, "25.00", cart.Subtotal().StringFixed(2))
	assert.Equal(t, "0.00", cart.ShippingFee(policy).StringFixed(2))
	assert.Equal(t, "25.00", cart.GrandTotal(policy).StringFixed(2))

	// Dropping below the threshold re-applies the flat rate.
	require.True(t, cart.UpdateQuantity("p1", 1))
	assert.Equal(t, "15.00", cart.Subtotal().StringFixed(2))
	assert.Equal(t, "5.00", cart.ShippingFee(policy).StringFixed(2))
	assert.Equal(t, "20.00", cart.GrandTotal(policy).StringFixed(2))
}
