package handlers

import (
	"time"

	"catalog/internal/models"

	"github.com/shopspring/decimal"
)

// Response shapes for the catalog API. Products have a compact list
// shape and a richer detail shape; both embed the resolved image URLs,
// never the raw stored fields.

// CategoryResponse is the wire shape for a category.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ProductCount int64     `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// ImageResponse is the wire shape for a product image.
type ImageResponse struct {
	ID    string `json:"id"`
	Image string `json:"image"`
	Order int    `json:"order"`
}

// ProductListResponse is the compact product shape used by listings.
type ProductListResponse struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Category      *string          `json:"category"`
	CategoryName  string           `json:"category_name"`
	Price         *decimal.Decimal `json:"price"`
	Status        string           `json:"status"`
	StatusDisplay string           `json:"status_display"`
	Images        []ImageResponse  `json:"images"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ProductDetailResponse adds the fields only the single-item endpoint
// exposes.
type ProductDetailResponse struct {
	ProductListResponse
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategoryResponse maps a category and its active-product count.
func NewCategoryResponse(category *models.Category, productCount int64) CategoryResponse {
	return CategoryResponse{
		ID:           category.ID,
		Title:        category.Title,
		ProductCount: productCount,
		CreatedAt:    category.CreatedAt,
	}
}

// NewImageResponse maps an image to its wire shape with the effective
// URL resolved against the media base.
func NewImageResponse(image *models.ProductImage, mediaURL string) ImageResponse {
	return ImageResponse{
		ID:    image.ID,
		Image: image.ResolveURL(mediaURL),
		Order: image.Position,
	}
}

// NewProductListResponse maps a product to the compact list shape.
func NewProductListResponse(product *models.Product, mediaURL string) ProductListResponse {
	images := make([]ImageResponse, len(product.Images))
	for i := range product.Images {
		images[i] = NewImageResponse(&product.Images[i], mediaURL)
	}

	categoryName := ""
	if product.Category != nil {
		categoryName = product.Category.Title
	}

	return ProductListResponse{
		ID:            product.ID,
		Title:         product.Title,
		Category:      product.CategoryID,
		CategoryName:  categoryName,
		Price:         product.Price,
		Status:        product.Status,
		StatusDisplay: models.StatusDisplay(product.Status),
		Images:        images,
		CreatedAt:     product.CreatedAt,
	}
}

// NewProductDetailResponse maps a product to the detail shape.
func NewProductDetailResponse(product *models.Product, mediaURL string) ProductDetailResponse {
	return ProductDetailResponse{
		ProductListResponse: NewProductListResponse(product, mediaURL),
		Description:         product.Description,
		IsActive:            product.IsActive,
		UpdatedAt:           product.UpdatedAt,
	}
}
