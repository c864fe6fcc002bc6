package services

import (
	"catalog/internal/models"
	"catalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories (title ascending) together
// with the active-product count per category for serialization.
func (s *CategoryService) GetAllCategories() ([]models.Category, map[string]int64, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	counts, err := s.repo.ActiveProductCounts()
	if err != nil {
		return nil, nil, err
	}
	return categories, counts, nil
}

// GetCategory retrieves a single category and its active-product count.
func (s *CategoryService) GetCategory(id string) (*models.Category, int64, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, 0, err
	}
	counts, err := s.repo.ActiveProductCounts()
	if err != nil {
		return nil, 0, err
	}
	return category, counts[category.ID], nil
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	return s.repo.Create(category)
}

// UpdateCategory updates an existing category's title.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	return s.repo.Update(category)
}

// DeleteCategory deletes a category. Deletion is rejected with a
// CategoryNotEmptyError while any product still references it; an
// allowed deletion detaches nothing because there is nothing to detach.
func (s *CategoryService) DeleteCategory(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	count, err := s.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &CategoryNotEmptyError{Count: count}
	}
	return s.repo.Delete(id)
}
