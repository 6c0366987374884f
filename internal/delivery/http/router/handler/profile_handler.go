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

// ProfileHandler holds dependencies for the account-area endpoints.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile handles the request for the caller's own profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.GetProfile(c.Request().Context(),
		usecase.Actor{UID: identity.UID, Admin: identity.Admin},
		identity.Email, "")
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileView(user), "Profile retrieved successfully")
}

// SaveDefaultAddress handles the default shipping address update.
func (h *ProfileHandler) SaveDefaultAddress(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var input *usecase.SaveAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.SaveDefaultAddress(c.Request().Context(), identity.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAddressView(*address), "Default address saved")
}
