package repositories

import (
	"catalog/internal/models"
)

// ProductFilter narrows and orders a product listing. Offset and Limit
// are applied after filtering; Ordering is a column name with an
// optional "-" prefix for descending order.
type ProductFilter struct {
	CategoryID *string
	Status     string
	IsActive   *bool
	Search     string
	Ordering   string
	Offset     int
	Limit      int
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// List returns the filtered page of products together with the total
	// number of matches before pagination.
	List(filter ProductFilter) ([]models.Product, int64, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete removes a product and all of its images.
	Delete(id string) error
	// ToggleActive atomically flips the product's is_active flag.
	ToggleActive(id string) error
}
