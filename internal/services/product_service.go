package services

import (
	"log"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *rabbitmq.Client
}

// NewProductService creates a new ProductService. The RabbitMQ client is
// optional; without it mutation events are simply not published.
func NewProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// ListProducts retrieves the filtered page of products plus the total
// match count.
func (s *ProductService) ListProducts(filter repositories.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(id string) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct applies catalog defaults, checks the business rules and
// creates the product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Status == "" {
		product.Status = models.StatusRegular
	}
	if err := s.checkProduct(product); err != nil {
		return err
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}
	s.publishEvent("product.created", map[string]interface{}{
		"product_id": product.ID,
		"title":      product.Title,
	})
	return nil
}

// UpdateProduct updates an existing product after re-checking the
// business rules.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Status == "" {
		product.Status = models.StatusRegular
	}
	if err := s.checkProduct(product); err != nil {
		return err
	}
	return s.productRepo.Update(product)
}

// DeleteProduct deletes a product; its images go with it.
func (s *ProductService) DeleteProduct(id string) error {
	return s.productRepo.Delete(id)
}

// ToggleActive flips a product's is_active flag and returns the updated
// product in full.
func (s *ProductService) ToggleActive(id string) (*models.Product, error) {
	if err := s.productRepo.ToggleActive(id); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.publishEvent("product.toggled", map[string]interface{}{
		"product_id": product.ID,
		"is_active":  product.IsActive,
	})
	return product, nil
}

// checkProduct enforces the rules a struct tag cannot express: a price,
// when present, must not be negative, and a referenced category must
// exist.
func (s *ProductService) checkProduct(product *models.Product) error {
	if product.Price != nil && product.Price.IsNegative() {
		return &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	if product.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(*product.CategoryID); err != nil {
			return &ValidationError{Field: "category", Message: "referenced category does not exist"}
		}
	}
	return nil
}

// publishEvent sends a catalog event to the operator channel. Publishing
// is best-effort: failures are logged and never fail the operation.
func (s *ProductService) publishEvent(eventType string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, data); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", eventType, err)
	}
}
