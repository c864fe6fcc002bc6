package repositories

import (
	"catalog/internal/models"
)

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	// GetAll returns every category ordered by title ascending.
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	// Delete removes a category and detaches (does not delete) its products.
	Delete(id string) error
	// CountProducts counts all products referencing the category.
	CountProducts(categoryID string) (int64, error)
	// ActiveProductCounts returns the number of active products per
	// category id, for the category serialization shape.
	ActiveProductCounts() (map[string]int64, error)
}
