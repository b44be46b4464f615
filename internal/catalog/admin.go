package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"shawarma-storefront/internal/entity"
)

// Admin write operations against the catalog API. The storefront never calls
// these; only the admin console does, behind its own authentication.

// CreateProduct creates a new product.
func (c *Client) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created := &entity.Product{}
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("%s/api/shawarma", c.baseURL), product, created)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}
	return created, nil
}

// UpdateProduct replaces an existing product.
func (c *Client) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	updated := &entity.Product{}
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("%s/api/shawarma/%d", c.baseURL, product.ID), product, updated)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating product %d", product.ID)
		return nil, err
	}
	return updated, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/api/shawarma/%d", c.baseURL, id), nil, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %d", id)
	}
	return err
}

// SetAvailability flips a product's availability via a partial update.
func (c *Client) SetAvailability(ctx context.Context, id int, available bool) error {
	payload := map[string]bool{"isAvailable": available}
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("%s/api/shawarma/%d/availability", c.baseURL, id), payload, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating availability for product %d", id)
	}
	return err
}

// SetSortOrder writes a product's explicit display position via a partial
// update.
func (c *Client) SetSortOrder(ctx context.Context, id, sortOrder int) error {
	payload := map[string]int{"sortOrder": sortOrder}
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("%s/api/shawarma/%d/sort-order", c.baseURL, id), payload, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating sort order for product %d", id)
	}
	return err
}

// UploadImage posts a new image to a product's image sub-resource as a
// multipart form with the file under the "image" field.
func (c *Client) UploadImage(ctx context.Context, productID int, filename string, file io.Reader) (*entity.ProductImage, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/shawarma/%d/images", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error().Err(err).Msgf("Error uploading image for product %d", productID)
		return nil, &ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp)
	}

	image := &entity.ProductImage{}
	if err := json.NewDecoder(resp.Body).Decode(image); err != nil {
		return nil, err
	}
	return image, nil
}

// CropRect is the pixel rectangle kept by an image crop.
type CropRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CropImage asks the image service to crop an uploaded image in place.
func (c *Client) CropImage(ctx context.Context, imageID int, rect CropRect) error {
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("%s/api/images/%d/crop", c.baseURL, imageID), rect, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error cropping image %d", imageID)
	}
	return err
}

// SetPrimaryImage marks an image as the product's primary display image.
func (c *Client) SetPrimaryImage(ctx context.Context, imageID int) error {
	err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("%s/api/images/%d/primary", c.baseURL, imageID), nil, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marking image %d primary", imageID)
	}
	return err
}

// DeleteImage removes an image.
func (c *Client) DeleteImage(ctx context.Context, imageID int) error {
	err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("%s/api/images/%d", c.baseURL, imageID), nil, nil)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting image %d", imageID)
	}
	return err
}
