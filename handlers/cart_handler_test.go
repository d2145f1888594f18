package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"cubikor_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartBody(productID uint, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"product_id":    productID,
		"category_id":   1,
		"shop_id":       9,
		"quantity":      quantity,
		"product_name":  "Cube Timer",
		"product_image": "https://cdn.example.com/timer.png",
		"product_price": 19.99,
	}
}

func TestAddCartItem(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "buyer@example.com")

	resp := env.request(t, http.MethodPost, "/api/cart", token, cartBody(7, 2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var item models.CartItem
	require.NoError(t, env.DB.Where("user_id = ? AND product_id = ?", user.ID, 7).First(&item).Error)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Cube Timer", item.ProductName)
}

func TestAddCartItemDuplicateIsConflict(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "buyer@example.com")

	resp := env.request(t, http.MethodPost, "/api/cart", token, cartBody(7, 2))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/cart", token, cartBody(7, 1))
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Exactly one line survives for the pair.
	var count int64
	env.DB.Model(&models.CartItem{}).Where("user_id = ? AND product_id = ?", user.ID, 7).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddCartItemValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "buyer@example.com")

	resp := env.request(t, http.MethodPost, "/api/cart", token, cartBody(7, 0))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/cart", token, cartBody(0, 2))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCartListAndRemove(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "buyer@example.com")

	require.Equal(t, http.StatusCreated,
		env.request(t, http.MethodPost, "/api/cart", token, cartBody(7, 2)).StatusCode)
	require.Equal(t, http.StatusCreated,
		env.request(t, http.MethodPost, "/api/cart", token, cartBody(8, 1)).StatusCode)

	resp := env.request(t, http.MethodGet, "/api/cart", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, items, 2)

	var item models.CartItem
	require.NoError(t, env.DB.Where("user_id = ? AND product_id = ?", user.ID, 7).First(&item).Error)

	resp = env.request(t, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.request(t, http.MethodGet, "/api/cart", token, nil)
	items = decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, items, 1)
}

func TestRemoveCartItemScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	owner, ownerToken := env.createUser(t, "owner@example.com")
	_, otherToken := env.createUser(t, "other@example.com")

	require.Equal(t, http.StatusCreated,
		env.request(t, http.MethodPost, "/api/cart", ownerToken, cartBody(7, 2)).StatusCode)

	var item models.CartItem
	require.NoError(t, env.DB.Where("user_id = ?", owner.ID).First(&item).Error)

	// Another user cannot delete it.
	resp := env.request(t, http.MethodDelete, fmt.Sprintf("/api/cart/%d", item.ID), otherToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var count int64
	env.DB.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}
