package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shawarma-storefront/internal/cart"
	"shawarma-storefront/internal/catalog"
	"shawarma-storefront/internal/checkout"
	"shawarma-storefront/internal/entity"
	"shawarma-storefront/internal/menu"
)

// StorefrontHandler serves the customer-facing surface: the grouped menu,
// the session cart, and checkout.
type StorefrontHandler struct {
	catalog  *catalog.Client
	store    *cart.Store
	checkout *checkout.Service
}

// NewStorefrontHandler creates a new instance of StorefrontHandler.
func NewStorefrontHandler(catalogClient *catalog.Client, store *cart.Store, checkoutService *checkout.Service) *StorefrontHandler {
	return &StorefrontHandler{catalog: catalogClient, store: store, checkout: checkoutService}
}

// GetMenu returns the grouped menu view --> GET /menu?q=
func (h *StorefrontHandler) GetMenu(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, menu.Build(products, c.QueryParam("q")))
}

// GetProductAddons returns the add-on categories for one product
// --> GET /menu/:id/addons
func (h *StorefrontHandler) GetProductAddons(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	categories, err := h.catalog.ListAddonCategories(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCart returns the session's cart with derived totals --> GET /cart
func (h *StorefrontHandler) GetCart(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	current, err := h.store.Cart(c.Request().Context(), sessionID)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(current))
}

type addItemRequest struct {
	ProductID    int                    `json:"productId"`
	Quantity     int                    `json:"quantity"`
	Addons       []entity.SelectedAddon `json:"addons"`
	Instructions string                 `json:"instructions"`
}

// AddCartItem adds a configured product to the cart --> POST /cart/items
func (h *StorefrontHandler) AddCartItem(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	req := addItemRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	if req.Quantity < 1 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Quantity must be at least 1"})
	}

	ctx := c.Request().Context()

	// The line item stores a snapshot, so the product is fetched fresh here
	// rather than trusted from the request body.
	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		return jsonError(c, err)
	}
	if !product.Available {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "This product is not available"})
	}

	current, err := h.store.AddItem(ctx, sessionID, *product, req.Quantity, req.Addons, req.Instructions)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(current))
}

// UpdateCartItemQuantity sets a line item's quantity; zero or less removes
// it --> PUT /cart/items/:key
func (h *StorefrontHandler) UpdateCartItemQuantity(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	req := struct {
		Quantity int `json:"quantity"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	current, err := h.store.UpdateQuantity(c.Request().Context(), sessionID, c.Param("key"), req.Quantity)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(current))
}

// UpdateCartItemInstructions overwrites a line item's special instructions
// --> PUT /cart/items/:key/instructions
func (h *StorefrontHandler) UpdateCartItemInstructions(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	req := struct {
		Instructions string `json:"instructions"`
	}{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}

	current, err := h.store.UpdateInstructions(c.Request().Context(), sessionID, c.Param("key"), req.Instructions)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(current))
}

// RemoveCartItem deletes one line item --> DELETE /cart/items/:key
func (h *StorefrontHandler) RemoveCartItem(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	current, err := h.store.RemoveItem(c.Request().Context(), sessionID, c.Param("key"))
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(current))
}

// ClearCart empties the cart --> DELETE /cart
func (h *StorefrontHandler) ClearCart(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	if err := h.store.Clear(c.Request().Context(), sessionID); err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, cartView(entity.Cart{}))
}

// SubmitOrder places the order and clears the cart on success
// --> POST /checkout
func (h *StorefrontHandler) SubmitOrder(c echo.Context) error {
	sessionID, err := sessionID(c)
	if err != nil {
		return jsonError(c, err)
	}

	req := checkout.Request{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	req.IdempotentKey = c.Request().Header.Get("Idempotent-Key")

	order, err := h.checkout.Submit(c.Request().Context(), sessionID, req)
	if err != nil {
		return jsonError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orderId": order.ID,
		"message": "Your order has been placed",
	})
}

var errSessionRequired = errors.New("X-Session-ID header is required")

func sessionID(c echo.Context) (string, error) {
	id := c.Request().Header.Get("X-Session-ID")
	if id == "" {
		return "", errSessionRequired
	}
	return id, nil
}

type cartItemView struct {
	entity.LineItem
	Total int `json:"total"`
}

type cartViewBody struct {
	Items        []cartItemView `json:"items"`
	TotalItems   int            `json:"totalItems"`
	TotalPrice   int            `json:"totalPrice"`
	DeliveryFee  int            `json:"deliveryFee"`
	MinimumOrder int            `json:"minimumOrder"`
}

// cartView decorates the stored line items with the derived totals; nothing
// here is ever persisted.
func cartView(current entity.Cart) cartViewBody {
	items := make([]cartItemView, 0, len(current.Items))
	for _, item := range current.Items {
		items = append(items, cartItemView{LineItem: item, Total: cart.ItemTotal(item)})
	}

	return cartViewBody{
		Items:        items,
		TotalItems:   cart.ItemCount(current.Items),
		TotalPrice:   cart.CartTotal(current.Items),
		DeliveryFee:  cart.DeliveryFee,
		MinimumOrder: cart.MinimumOrder,
	}
}

// jsonError maps service errors onto the response envelope: validation
// failures answer 400, duplicate submissions 409, unreachable upstream 502,
// and server-reported upstream failures keep their status.
func jsonError(c echo.Context, err error) error {
	var apiErr *catalog.APIError
	var connErr *catalog.ConnectivityError

	switch {
	case errors.Is(err, errSessionRequired),
		errors.Is(err, checkout.ErrEmptyAddress),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrBelowMinimum):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, checkout.ErrDuplicateSubmission):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.As(err, &apiErr):
		return c.JSON(apiErr.StatusCode, map[string]string{"error": apiErr.Message})
	case errors.As(err, &connErr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": connErr.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
