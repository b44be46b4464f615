package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"shawarma-storefront/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Client talks to the remote catalog and order API. It performs no retries:
// a failed call is reported once and the caller decides whether to
// re-trigger it.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new instance of Client. baseURL selects the remote API
// host, e.g. "https://api.shawarma.example".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ListProducts fetches the full product list.
func (c *Client) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/shawarma", c.baseURL), &products)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching product list")
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/shawarma/%d", c.baseURL, id), product)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching product %d", id)
		return nil, err
	}
	return product, nil
}

// ListImages fetches a product's image descriptors.
func (c *Client) ListImages(ctx context.Context, productID int) ([]entity.ProductImage, error) {
	var images []entity.ProductImage
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/shawarma/%d/images", c.baseURL, productID), &images)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching images for product %d", productID)
		return nil, err
	}
	return images, nil
}

// ListAddonCategories fetches the add-on categories for a product. Option
// ids are unique across the whole catalog, not just within a category; the
// cart's line-item keys rely on that.
func (c *Client) ListAddonCategories(ctx context.Context, productID int) ([]entity.AddonCategory, error) {
	var categories []entity.AddonCategory
	err := c.getJSON(ctx, fmt.Sprintf("%s/api/shawarma/%d/addons", c.baseURL, productID), &categories)
	if err != nil {
		logger.Error().Err(err).Msgf("Error fetching addons for product %d", productID)
		return nil, err
	}
	return categories, nil
}

// CreateOrder submits an order. The response includes the id the kitchen
// assigned, used for the confirmation message only.
func (c *Client) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	created := &entity.Order{}
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("%s/api/orders", c.baseURL), order, created)
	if err != nil {
		logger.Error().Err(err).Msg("Error submitting order")
		return nil, err
	}
	return created, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, url, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, url string, in, out interface{}) error {
	var body *bytes.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
