package model

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// OrderLineModel is one frozen cart line inside an order document.
type OrderLineModel struct {
	ProductID string `firestore:"productId"`
	Name      string `firestore:"name"`
	ImageURL  string `firestore:"imageUrl"`
	UnitPrice string `firestore:"unitPrice"`
	Quantity  int64  `firestore:"quantity"`
}

// AddressModel is the shipping address embedded in order and user documents.
type AddressModel struct {
	FullName   string `firestore:"fullName"`
	Email      string `firestore:"email"`
	Line1      string `firestore:"line1"`
	Line2      string `firestore:"line2,omitempty"`
	City       string `firestore:"city"`
	PostalCode string `firestore:"postalCode"`
	Country    string `firestore:"country"`
}

// OrderModel is the Firestore document for an order. Only the status and
// updatedAt fields are ever rewritten after creation.
type OrderModel struct {
	UserID          string           `firestore:"userId"`
	Lines           []OrderLineModel `firestore:"lines"`
	ShippingAddress AddressModel     `firestore:"shippingAddress"`
	Subtotal        string           `firestore:"subtotal"`
	ShippingFee     string           `firestore:"shippingFee"`
	GrandTotal      string           `firestore:"grandTotal"`
	Status          string           `firestore:"status"`
	IdempotencyKey  string           `firestore:"idempotencyKey,omitempty"`
	CreatedAt       time.Time        `firestore:"createdAt"`
	UpdatedAt       time.Time        `firestore:"updatedAt"`
}

// FromAddressDomain maps a shipping address to its document form.
func FromAddressDomain(address *entity.ShippingAddress) AddressModel {
	return AddressModel{
		FullName:   address.FullName,
		Email:      address.Email,
		Line1:      address.Line1,
		Line2:      address.Line2,
		City:       address.City,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

// ToAddressDomain maps an address document back to the domain value.
func ToAddressDomain(m AddressModel) entity.ShippingAddress {
	return entity.ShippingAddress{
		FullName:   m.FullName,
		Email:      m.Email,
		Line1:      m.Line1,
		Line2:      m.Line2,
		City:       m.City,
		PostalCode: m.PostalCode,
		Country:    m.Country,
	}
}

// FromOrderDomain maps a domain order to its document form.
func FromOrderDomain(order *entity.Order) *OrderModel {
	lines := make([]OrderLineModel, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineModel{
			ProductID: line.Product.ProductID,
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			UnitPrice: line.Product.Price.String(),
			Quantity:  line.Quantity,
		})
	}

	return &OrderModel{
		UserID:          order.UserID,
		Lines:           lines,
		ShippingAddress: FromAddressDomain(&order.ShippingAddress),
		Subtotal:        order.Subtotal.String(),
		ShippingFee:     order.ShippingFee.String(),
		GrandTotal:      order.GrandTotal.String(),
		Status:          order.Status.String(),
		IdempotencyKey:  order.IdempotencyKey,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToOrderDomain maps an order document back to the domain entity.
func ToOrderDomain(id string, m *OrderModel) (*entity.Order, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "order document has malformed ID %q", id)
	}

	subtotal, err := decimal.NewFromString(m.Subtotal)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s has malformed subtotal %q", id, m.Subtotal)
	}
	fee, err := decimal.NewFromString(m.ShippingFee)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s has malformed shipping fee %q", id, m.ShippingFee)
	}
	total, err := decimal.NewFromString(m.GrandTotal)
	if err != nil {
		return nil, errors.Wrapf(err, "order %s has malformed grand total %q", id, m.GrandTotal)
	}

	lines := make([]entity.CartLine, 0, len(m.Lines))
	for _, line := range m.Lines {
		price, err := decimal.NewFromString(line.UnitPrice)
		if err != nil {
			return nil, errors.Wrapf(err, "order %s line %s has malformed price %q", id, line.ProductID, line.UnitPrice)
		}
		lines = append(lines, entity.CartLine{
			Product: entity.ProductSnapshot{
				ProductID: line.ProductID,
				Name:      line.Name,
				Price:     price,
				ImageURL:  line.ImageURL,
			},
			Quantity: line.Quantity,
		})
	}

	return &entity.Order{
		ID:              orderID,
		UserID:          m.UserID,
		Lines:           lines,
		ShippingAddress: ToAddressDomain(m.ShippingAddress),
		Subtotal:        subtotal,
		ShippingFee:     fee,
		GrandTotal:      total,
		Status:          entity.OrderStatus(m.Status),
		IdempotencyKey:  m.IdempotencyKey,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}, nil
}
