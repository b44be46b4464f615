package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shawarma-storefront/internal/entity"
)

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/shawarma", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.Product{
			{ID: 1, Name: "Classic Shawarma", Price: 250, Available: true},
		})
	}))
	defer server.Close()

	products, err := NewClient(server.URL).ListProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic Shawarma", products[0].Name)
}

func TestCreateOrderSendsSpecPayloadAndReadsAssignedID(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{"id": 77})
	}))
	defer server.Close()

	order := &entity.Order{
		CustomerName: "Dana",
		Phone:        "555-0134",
		Address:      "12 Olive St",
		Items:        []entity.OrderItem{{ShawarmaID: 1, Quantity: 3}},
	}

	created, err := NewClient(server.URL).CreateOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, 77, created.ID)
	assert.Equal(t, "Dana", received["customerName"])
	items := received["items"].([]interface{})
	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["shawarmaId"])
	assert.Equal(t, float64(3), first["quantity"])
}

func TestServerErrorUsesBodyMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "name is required"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).CreateProduct(context.Background(), &entity.Product{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "name is required", apiErr.Message)
}

func TestServerErrorDefaultsPerStatusClass(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).ListProducts(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "try again later")
}

func TestConnectivityFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // nothing listens anymore

	_, err := NewClient(server.URL).ListProducts(context.Background())

	var connErr *ConnectivityError
	assert.ErrorAs(t, err, &connErr)
}

func TestSetSortOrderSendsPartialUpdate(t *testing.T) {
	var received map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/shawarma/4/sort-order", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
	}))
	defer server.Close()

	require.NoError(t, NewClient(server.URL).SetSortOrder(context.Background(), 4, 2))
	assert.Equal(t, map[string]int{"sortOrder": 2}, received)
}

func TestUploadImagePostsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/shawarma/4/images", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "front.jpg", header.Filename)

		json.NewEncoder(w).Encode(entity.ProductImage{ID: 9, ProductID: 4, URL: "/img/9.jpg"})
	}))
	defer server.Close()

	image, err := NewClient(server.URL).UploadImage(context.Background(), 4, "front.jpg", bytes.NewReader([]byte("jpeg-bytes")))

	require.NoError(t, err)
	assert.Equal(t, 9, image.ID)
}
