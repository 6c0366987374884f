package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin catalog endpoints. The
// router guards every route here with the admin claim middleware.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// CreateProduct handles the product creation request.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var input *usecase.SaveProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product), "Product created successfully")
}

// UpdateProduct handles the product update request.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var input *usecase.SaveProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product updated successfully")
}

// DeleteProduct handles the product deletion request.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadProductImage handles the multipart product image upload.
func (h *AdminHandler) UploadProductImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	product, err := h.uc.UploadProductImage(c.Request().Context(), &usecase.UploadImageInput{
		ProductID:   c.Param("id"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product), "Product image uploaded")
}

// CreateCategory handles the category creation request.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input *usecase.SaveCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCategoryView(category), "Category created successfully")
}

// UpdateCategory handles the category update request.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	var input *usecase.SaveCategoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryView(category), "Category updated successfully")
}

// DeleteCategory handles the category deletion request.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	if err := h.uc.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Category deleted successfully")
}

// CreateHeroImage handles the banner creation request.
func (h *AdminHandler) CreateHeroImage(c echo.Context) error {
	var input *usecase.SaveHeroImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	image, err := h.uc.CreateHeroImage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toHeroImageView(image), "Hero image created successfully")
}

// UpdateHeroImage handles the banner update request.
func (h *AdminHandler) UpdateHeroImage(c echo.Context) error {
	var input *usecase.SaveHeroImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	image, err := h.uc.UpdateHeroImage(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toHeroImageView(image), "Hero image updated successfully")
}

// DeleteHeroImage handles the banner deletion request.
func (h *AdminHandler) DeleteHeroImage(c echo.Context) error {
	if err := h.uc.DeleteHeroImage(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Hero image deleted successfully")
}
