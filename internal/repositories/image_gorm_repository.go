package repositories

import (
	"errors"
	"fmt"

	"catalog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{
		db: db,
	}
}

// ListByProduct retrieves a product's images in display order.
func (r *GORMImageRepository) ListByProduct(productID string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.db.
		Where("product_id = ?", productID).
		Order("position ASC, created_at ASC").
		Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to list images for product %s: %w", productID, err)
	}
	return images, nil
}

// GetByID retrieves a single image by its ID.
func (r *GORMImageRepository) GetByID(id string) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to get image by ID %s: %w", id, err)
	}
	return &image, nil
}

// Save creates or updates an image depending on whether it has an ID.
func (r *GORMImageRepository) Save(image *models.ProductImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
		if err := r.db.Create(image).Error; err != nil {
			return fmt.Errorf("failed to create image: %w", err)
		}
		return nil
	}

	res := r.db.Save(image)
	if res.Error != nil {
		return fmt.Errorf("failed to update image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}

// Delete removes an image by its ID.
func (r *GORMImageRepository) Delete(id string) error {
	res := r.db.Delete(&models.ProductImage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}
