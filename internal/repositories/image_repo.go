package repositories

import (
	"catalog/internal/models"
)

// ImageRepository defines the interface for product image data access.
type ImageRepository interface {
	// ListByProduct returns a product's images ordered by position
	// ascending, then creation time.
	ListByProduct(productID string) ([]models.ProductImage, error)
	GetByID(id string) (*models.ProductImage, error)
	// Save creates the image when it has no ID yet, otherwise updates it.
	Save(image *models.ProductImage) error
	Delete(id string) error
}
