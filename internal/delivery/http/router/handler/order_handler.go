package handler

import (
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IdempotencyKeyHeader deduplicates checkout retries.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrderHandler holds dependencies for the order endpoints.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func actorFromContext(c echo.Context) (usecase.Actor, error) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return usecase.Actor{UID: identity.UID, Admin: identity.Admin}, nil
}

func orderIDFromPath(c echo.Context) (uuid.UUID, error) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrOrderNotFound
	}

	return orderID, nil
}

// Checkout handles the cart-to-order request.
func (h *OrderHandler) Checkout(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	sessionID, ok := middleware.CartSessionFromContext(c)
	if !ok {
		return domainerrors.ErrCartSessionInvalid
	}

	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	input.SessionID = sessionID
	input.UserID = actor.UID
	input.IdempotencyKey = c.Request().Header.Get(IdempotencyKeyHeader)

	order, err := h.uc.Checkout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(order), "Order created successfully")
}

// GetOrder handles the single order request (owner or admin).
func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromPath(c)
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), orderID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order retrieved successfully")
}

// ListOrders handles the caller's order history request.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}

// CancelOrder handles the customer cancellation request.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromPath(c)
	if err != nil {
		return err
	}

	order, err := h.uc.CancelOrder(c.Request().Context(), orderID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order cancelled")
}

// OrderTrackingQR serves the tracking QR code PNG for an order.
func (h *OrderHandler) OrderTrackingQR(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromPath(c)
	if err != nil {
		return err
	}

	png, err := h.uc.OrderTrackingQR(c.Request().Context(), orderID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListAllOrders handles the admin order dashboard request.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListAllOrders(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(orders), "Orders retrieved successfully")
}

// TransitionStatus handles the admin status change request.
func (h *OrderHandler) TransitionStatus(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	orderID, err := orderIDFromPath(c)
	if err != nil {
		return err
	}

	var input *usecase.TransitionStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.TransitionStatus(c.Request().Context(), orderID, entity.OrderStatus(input.Status), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(order), "Order status updated")
}
