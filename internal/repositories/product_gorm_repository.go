package repositories

import (
	"errors"
	"fmt"
	"strings"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// orderImages keeps image collections in display order wherever they are
// preloaded: position ascending, ties broken by creation time.
func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, created_at ASC")
}

// List retrieves the filtered, ordered page of products plus the total
// match count before pagination.
func (r *GORMProductRepository) List(filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("lower(title) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	if err := query.
		Order(orderClause(filter.Ordering)).
		Offset(filter.Offset).
		Limit(filter.Limit).
		Preload("Category").
		Preload("Images", orderImages).
		Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// orderClause translates an API ordering value ("price", "-created_at")
// into a SQL order expression. Unknown values fall back to the default
// of most-recently-created first.
func orderClause(ordering string) string {
	direction := "ASC"
	column := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		column = ordering[1:]
	}
	switch column {
	case "created_at", "title", "price":
		return column + " " + direction
	default:
		return "created_at DESC"
	}
}

// GetByID retrieves a single product with its category and ordered images.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.
		Preload("Category").
		Preload("Images", orderImages).
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product. Save writes all fields, including
// zero values, so the caller must pass a fully populated product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit("Category", "Images").Save(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Delete removes a product and its images in a single transaction so the
// cascade is atomic.
func (r *GORMProductRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductImage{}, "product_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete images for product %s: %w", id, err)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// ToggleActive flips the is_active flag inside a transaction, so the read
// and the write form one atomic mutation.
func (r *GORMProductRepository) ToggleActive(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return fmt.Errorf("failed to get product %s for toggle: %w", id, err)
		}
		if err := tx.Model(&product).Update("is_active", !product.IsActive).Error; err != nil {
			return fmt.Errorf("failed to toggle product %s: %w", id, err)
		}
		return nil
	})
}
