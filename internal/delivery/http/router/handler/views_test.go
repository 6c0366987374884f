package handler

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProductView_MoneyAsFixedString(t *testing.T) {
	product := &entity.Product{
		ID:    "p1",
		Name:  "Coffee",
		Price: decimal.RequireFromString("10.5"),
	}

	view := toProductView(product)
	assert.Equal(t, "10.50", view.Price)
}

func TestToOrderView(t *testing.T) {
	now := time.Now().UTC()
	order := &entity.Order{
		ID:     uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		UserID: "user-1",
		Lines: []entity.CartLine{
			{
				Product: entity.ProductSnapshot{
					ProductID: "p1",
					Name:      "Coffee",
					Price:     decimal.RequireFromString("10.00"),
				},
				Quantity: 2,
			},
		},
		ShippingAddress: entity.ShippingAddress{
			FullName: "王小明",
			Email:    "buyer@example.com",
			Line1:    "中山路 100 號",
			City:     "台北市",
			Country:  "TW",
		},
		Subtotal:    decimal.RequireFromString("20.00"),
		ShippingFee: decimal.RequireFromString("5.00"),
		GrandTotal:  decimal.RequireFromString("25.00"),
		Status:      entity.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	view := toOrderView(order)

	assert.Equal(t, "11111111-2222-3333-4444-555555555555", view.ID)
	assert.Equal(t, "user-1", view.UserID)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, "10.00", view.Lines[0].UnitPrice)
	assert.Equal(t, "20.00", view.Lines[0].LineTotal)
	assert.Equal(t, int64(2), view.Lines[0].Quantity)
	assert.Equal(t, "20.00", view.Subtotal)
	assert.Equal(t, "5.00", view.ShippingFee)
	assert.Equal(t, "25.00", view.GrandTotal)
	assert.Equal(t, "pending", view.Status)
	assert.Equal(t, "王小明", view.ShippingAddress.FullName)
}

func TestToProfileView_OmitsMissingAddress(t *testing.T) {
	user := &entity.User{
		UID:   "uid-1",
		Email: "buyer@example.com",
	}

	view := toProfileView(user)
	assert.Nil(t, view.DefaultAddress)

	user.DefaultAddress = &entity.ShippingAddress{FullName: "王小明", Line1: "中山路 100 號"}
	view = toProfileView(user)
	require.NotNil(t, view.DefaultAddress)
	assert.Equal(t, "王小明", view.DefaultAddress.FullName)
}
