// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	ProfileHandler *handler.ProfileHandler
	AdminHandler   *handler.AdminHandler

	AuthMiddleware        *middleware.AuthMiddleware
	CartSessionMiddleware *middleware.CartSessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/products", r.params.CatalogHandler.ListProducts)
	e.GET("/products/:id", r.params.CatalogHandler.GetProduct)
	e.GET("/categories", r.params.CatalogHandler.ListCategories)
	e.GET("/hero-images", r.params.CatalogHandler.ListHeroImages)

	// Cart routes bound to a session token; a session is minted on first use
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.params.CartSessionMiddleware.Attach)
	{
		cartGroup.GET("", r.params.CartHandler.ViewCart)
		cartGroup.DELETE("", r.params.CartHandler.ClearCart)
		cartGroup.POST("/items", r.params.CartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:productId", r.params.CartHandler.RemoveItem)
	}

	// Checkout needs both a signed-in customer and an existing cart session
	e.POST("/checkout", r.params.OrderHandler.Checkout,
		r.params.AuthMiddleware.Authenticate,
		r.params.CartSessionMiddleware.Require,
	)

	// Customer order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		orderGroup.GET("", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.POST("/:id/cancel", r.params.OrderHandler.CancelOrder)
		orderGroup.GET("/:id/qr", r.params.OrderHandler.OrderTrackingQR)
	}

	// Account area
	meGroup := e.Group("/me")
	meGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		meGroup.GET("", r.params.ProfileHandler.GetProfile)
		meGroup.PUT("/address", r.params.ProfileHandler.SaveDefaultAddress)
	}

	// Admin routes require authentication and the "admin" custom claim
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireAdmin)
	{
		adminGroup.POST("/products", r.params.AdminHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.params.AdminHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.params.AdminHandler.DeleteProduct)
		adminGroup.POST("/products/:id/image", r.params.AdminHandler.UploadProductImage)

		adminGroup.POST("/categories", r.params.AdminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.params.AdminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.params.AdminHandler.DeleteCategory)

		adminGroup.POST("/hero-images", r.params.AdminHandler.CreateHeroImage)
		adminGroup.PUT("/hero-images/:id", r.params.AdminHandler.UpdateHeroImage)
		adminGroup.DELETE("/hero-images/:id", r.params.AdminHandler.DeleteHeroImage)

		adminGroup.GET("/orders", r.params.OrderHandler.ListAllOrders)
		adminGroup.PATCH("/orders/:id/status", r.params.OrderHandler.TransitionStatus)
	}
}
