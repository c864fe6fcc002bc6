package models_test

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestProductImage_ResolveURL(t *testing.T) {
	// A direct URL always wins, even when a file is also present.
	image := models.ProductImage{
		ImageURL: "https://cdn.example.com/products/a.jpg",
		FilePath: "products/2026/08/29/a.jpg",
	}
	assert.Equal(t, "https://cdn.example.com/products/a.jpg", image.ResolveURL("/media/"))

	// Without a URL the uploaded file's location is used.
	image = models.ProductImage{FilePath: "products/2026/08/29/a.jpg"}
	assert.Equal(t, "/media/products/2026/08/29/a.jpg", image.ResolveURL("/media/"))

	// No source at all means no image.
	image = models.ProductImage{}
	assert.Equal(t, "", image.ResolveURL("/media/"))
}

func TestProductImage_HasSource(t *testing.T) {
	assert.False(t, (&models.ProductImage{}).HasSource())
	assert.True(t, (&models.ProductImage{FilePath: "products/a.jpg"}).HasSource())
	assert.True(t, (&models.ProductImage{ImageURL: "https://example.com/a.jpg"}).HasSource())
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "new stock arrival", models.StatusDisplay(models.StatusNew))
	assert.Equal(t, "regular item", models.StatusDisplay(models.StatusRegular))
}
