package handlers_test

import (
	"net/http"
	"testing"

	"cubikor_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Category{Name: "Electronics", Slug: "electronics"}).Error)
	require.NoError(t, env.DB.Create(&models.Category{Name: "Books", Slug: "books"}).Error)

	resp := env.request(t, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	categories := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, categories, 2)
	// Sorted by name.
	assert.Equal(t, "Books", categories[0].(map[string]interface{})["name"])
}

func TestGetCategoryBySlug(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.DB.Create(&models.Category{Name: "Electronics", Slug: "electronics"}).Error)
	require.NoError(t, env.DB.Create(&models.Category{Name: "Books", Slug: "books"}).Error)

	resp := env.request(t, http.MethodGet, "/api/categories?slug=books", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	categories := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, categories, 1)
	assert.Equal(t, "books", categories[0].(map[string]interface{})["slug"])

	resp = env.request(t, http.MethodGet, "/api/categories?slug=no-such", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody(t, resp)["data"])
}
