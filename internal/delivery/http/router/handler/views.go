package handler

import (
	"time"

	"storefront/internal/domain/entity"
)

// View models returned by the handlers. Money fields are decimal strings
// with two fraction digits, never floats.

// ProductView is the storefront presentation of a product.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Stock       *int64    `json:"stock,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryView is the storefront presentation of a category.
type CategoryView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"displayOrder"`
}

// HeroImageView is the storefront presentation of a hero banner.
type HeroImageView struct {
	ID           string `json:"id"`
	ImageURL     string `json:"imageUrl"`
	Headline     string `json:"headline,omitempty"`
	LinkURL      string `json:"linkUrl,omitempty"`
	IsActive     bool   `json:"isActive"`
	DisplayOrder int    `json:"displayOrder"`
}

// AddressView is the presentation of a shipping address.
type AddressView struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderLineView is one frozen order line.
type OrderLineView struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl,omitempty"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

// OrderView is the presentation of an order, used for both the customer
// confirmation view and the admin dashboard.
type OrderView struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Lines           []OrderLineView `json:"lines"`
	ShippingAddress AddressView     `json:"shippingAddress"`
	Subtotal        string          `json:"subtotal"`
	ShippingFee     string          `json:"shippingFee"`
	GrandTotal      string          `json:"grandTotal"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// ProfileView is the account-area presentation of a user.
type ProfileView struct {
	UID            string       `json:"uid"`
	Email          string       `json:"email,omitempty"`
	DisplayName    string       `json:"displayName,omitempty"`
	DefaultAddress *AddressView `json:"defaultAddress,omitempty"`
	Admin          bool         `json:"admin"`
}

func toProductView(p *entity.Product) *ProductView {
	return &ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductViews(products []*entity.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

func toCategoryView(cat *entity.Category) *CategoryView {
	return &CategoryView{
		ID:           cat.ID,
		Name:         cat.Name,
		DisplayOrder: cat.DisplayOrder,
	}
}

func toCategoryViews(categories []*entity.Category) []*CategoryView {
	views := make([]*CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, toCategoryView(cat))
	}

	return views
}

func toHeroImageView(img *entity.HeroImage) *HeroImageView {
	return &HeroImageView{
		ID:           img.ID,
		ImageURL:     img.ImageURL,
		Headline:     img.Headline,
		LinkURL:      img.LinkURL,
		IsActive:     img.IsActive,
		DisplayOrder: img.DisplayOrder,
	}
}

func toHeroImageViews(images []*entity.HeroImage) []*HeroImageView {
	views := make([]*HeroImageView, 0, len(images))
	for _, img := range images {
		views = append(views, toHeroImageView(img))
	}

	return views
}

func toAddressView(addr entity.ShippingAddress) AddressView {
	return AddressView{
		FullName:   addr.FullName,
		Email:      addr.Email,
		Line1:      addr.Line1,
		Line2:      addr.Line2,
		City:       addr.City,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
}

func toOrderView(order *entity.Order) *OrderView {
	lines := make([]OrderLineView, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, OrderLineView{
			ProductID: line.Product.ProductID,
			Name:      line.Product.Name,
			ImageURL:  line.Product.ImageURL,
			UnitPrice: line.Product.Price.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal().StringFixed(2),
		})
	}

	return &OrderView{
		ID:              order.ID.String(),
		UserID:          order.UserID,
		Lines:           lines,
		ShippingAddress: toAddressView(order.ShippingAddress),
		Subtotal:        order.Subtotal.StringFixed(2),
		ShippingFee:     order.ShippingFee.StringFixed(2),
		GrandTotal:      order.GrandTotal.StringFixed(2),
		Status:          order.Status.String(),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*OrderView {
	views := make([]*OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

func toProfileView(user *entity.User) *ProfileView {
	view := &ProfileView{
		UID:         user.UID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Admin:       user.Admin,
	}
	if user.DefaultAddress != nil {
		addr := toAddressView(*user.DefaultAddress)
		view.DefaultAddress = &addr
	}

	return view
}
