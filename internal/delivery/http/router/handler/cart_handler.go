package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for the cart endpoints. Every route runs
// behind the cart session middleware, which guarantees a session ID on the
// context.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// ViewCart handles the cart retrieval request.
func (h *CartHandler) ViewCart(c echo.Context) error {
	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	view, err := h.uc.View(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem handles the add-to-cart request.
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.AddItem(c.Request().Context(), sessionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// UpdateQuantity handles the line quantity change request.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	var input *usecase.UpdateCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	view, err := h.uc.UpdateQuantity(c.Request().Context(), sessionID, c.Param("productId"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart line updated")
}

// RemoveItem handles the line removal request.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	view, err := h.uc.RemoveItem(c.Request().Context(), sessionID, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// ClearCart handles the cart clearing request.
func (h *CartHandler) ClearCart(c echo.Context) error {
	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	if err := h.uc.Clear(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}
