package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shawarma-storefront/internal/admin"
	"shawarma-storefront/internal/catalog"
	"shawarma-storefront/internal/entity"
)

// AdminHandler serves the admin console: product CRUD, availability and
// display-order management, and the image sub-resource. Everything except
// Login sits behind the JWT middleware registered in main.
type AdminHandler struct {
	admin   *admin.Service
	catalog *catalog.Client
}

// NewAdminHandler creates a new instance of AdminHandler.
func NewAdminHandler(adminService *admin.Service, catalogClient *catalog.Client) *AdminHandler {
	return &AdminHandler{admin: adminService, catalog: catalogClient}
}

// Login issues an admin token --> POST /admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	req := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	token, err := h.admin.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// ListProducts returns every product, available or not, in the admin
// display order --> GET /admin/shawarma
func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.admin.ListProducts(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// CreateProduct creates a new product --> POST /admin/shawarma
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	product := entity.Product{}
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	created, err := h.admin.CreateProduct(c.Request().Context(), &product)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, created)
}

// UpdateProduct replaces a product --> PUT /admin/shawarma/:id
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	product := entity.Product{}
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	product.ID = id

	updated, err := h.admin.UpdateProduct(c.Request().Context(), &product)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product --> DELETE /admin/shawarma/:id
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	if err := h.admin.DeleteProduct(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}

// ToggleAvailability flips a product on or off the menu
// --> PATCH /admin/shawarma/:id/availability
func (h *AdminHandler) ToggleAvailability(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	req := struct {
		Available bool `json:"isAvailable"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.admin.ToggleAvailability(c.Request().Context(), id, req.Available); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Availability updated"})
}

// MoveProduct places a product at an explicit position and re-packs the
// sort order --> PUT /admin/shawarma/:id/position
func (h *AdminHandler) MoveProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	req := struct {
		Position int `json:"position"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.admin.MoveProduct(c.Request().Context(), id, req.Position); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Display order updated"})
}

// ListImages returns a product's images --> GET /admin/shawarma/:id/images
func (h *AdminHandler) ListImages(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	images, err := h.catalog.ListImages(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, images)
}

// UploadImage forwards a multipart upload to the image sub-resource
// --> POST /admin/shawarma/:id/images
func (h *AdminHandler) UploadImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "An image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return jsonError(c, err)
	}
	defer file.Close()

	image, err := h.catalog.UploadImage(c.Request().Context(), id, fileHeader.Filename, file)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, image)
}

// CropImage crops an uploaded image --> POST /admin/images/:id/crop
func (h *AdminHandler) CropImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image ID"})
	}

	rect := catalog.CropRect{}
	if err := c.Bind(&rect); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	if err := h.catalog.CropImage(c.Request().Context(), id, rect); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image cropped"})
}

// SetPrimaryImage marks an image as the product's display image
// --> PATCH /admin/images/:id/primary
func (h *AdminHandler) SetPrimaryImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image ID"})
	}

	if err := h.catalog.SetPrimaryImage(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Primary image updated"})
}

// DeleteImage removes an image --> DELETE /admin/images/:id
func (h *AdminHandler) DeleteImage(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid image ID"})
	}

	if err := h.catalog.DeleteImage(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Image deleted"})
}
