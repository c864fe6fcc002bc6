package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductHandler handles HTTP requests for products and their images.
type ProductHandler struct {
	service      *services.ProductService
	imageService *services.ImageService
	validate     *validator.Validate
	mediaRoot    string
	mediaURL     string
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, imageService *services.ImageService, mediaRoot, mediaURL string) *ProductHandler {
	return &ProductHandler{
		service:      service,
		imageService: imageService,
		validate:     validator.New(),
		mediaRoot:    mediaRoot,
		mediaURL:     mediaURL,
	}
}

// RegisterRoutes registers the product routes with the Fiber app. The
// fixed-path convenience queries are registered before the id routes so
// they are matched first.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Get("/by_category", h.HandleByCategory)
	products.Get("/new_arrivals", h.HandleNewArrivals)
	products.Get("/:id", h.HandleGet)
	products.Put("/:id", h.HandleUpdate)
	products.Patch("/:id", h.HandlePatch)
	products.Delete("/:id", h.HandleDelete)
	products.Post("/:id/toggle_active", h.HandleToggleActive)
	products.Get("/:id/images", h.HandleListImages)
	products.Post("/:id/images", h.HandleCreateImage)
	products.Patch("/:id/images/:imageID", h.HandleUpdateImage)
	products.Delete("/:id/images/:imageID", h.HandleDeleteImage)
}

// ProductRequest is the request body for creating or replacing a
// product.
type ProductRequest struct {
	Title       string           `json:"title" validate:"required,min=1,max=300"`
	Category    *string          `json:"category" validate:"omitempty,uuid"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Status      string           `json:"status" validate:"omitempty,oneof=new regular"`
	IsActive    *bool            `json:"is_active"`
}

// ProductPatchRequest is the request body for a partial product update;
// only the provided fields are applied.
type ProductPatchRequest struct {
	Title       *string          `json:"title" validate:"omitempty,min=1,max=300"`
	Category    *string          `json:"category" validate:"omitempty,uuid"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Status      *string          `json:"status" validate:"omitempty,oneof=new regular"`
	IsActive    *bool            `json:"is_active"`
}

// parseFilter reads the listing query parameters shared by the list and
// convenience endpoints.
func parseFilter(c *fiber.Ctx) repositories.ProductFilter {
	filter := repositories.ProductFilter{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
	}
	if category := c.Query("category"); category != "" {
		filter.CategoryID = &category
	}
	if isActive := c.Query("is_active"); isActive != "" {
		if v, err := strconv.ParseBool(isActive); err == nil {
			filter.IsActive = &v
		}
	}
	return filter
}

// listPage runs a filtered product listing and wraps it in the
// pagination envelope.
func (h *ProductHandler) listPage(c *fiber.Ctx, filter repositories.ProductFilter) error {
	page, pageSize := ParsePageParams(c)
	filter.Offset = (page - 1) * pageSize
	filter.Limit = pageSize

	products, total, err := h.service.ListProducts(filter)
	if err != nil {
		return serviceError(c, err)
	}

	results := make([]ProductListResponse, len(products))
	for i := range products {
		results[i] = NewProductListResponse(&products[i], h.mediaURL)
	}
	return c.JSON(NewPage(c, total, page, pageSize, results))
}

// HandleList returns the paginated product listing with filtering,
// search and ordering.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	return h.listPage(c, parseFilter(c))
}

// HandleByCategory returns the product listing restricted to the given
// category. A missing category_id parameter is a client error.
func (h *ProductHandler) HandleByCategory(c *fiber.Ctx) error {
	categoryID := c.Query("category_id")
	if categoryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "category_id parameter is required",
		})
	}
	filter := parseFilter(c)
	filter.CategoryID = &categoryID
	return h.listPage(c, filter)
}

// HandleNewArrivals returns active products with the "new" status.
func (h *ProductHandler) HandleNewArrivals(c *fiber.Ctx) error {
	filter := parseFilter(c)
	filter.Status = models.StatusNew
	active := true
	filter.IsActive = &active
	return h.listPage(c, filter)
}

// HandleGet retrieves a single product in the detail shape.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewProductDetailResponse(product, h.mediaURL))
}

// HandleCreate creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	product := models.Product{
		Title:       req.Title,
		CategoryID:  req.Category,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return serviceError(c, err)
	}

	created, err := h.service.GetProduct(product.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(NewProductDetailResponse(created, h.mediaURL))
}

// HandleUpdate replaces a product's writable fields.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	product.Title = req.Title
	product.CategoryID = req.Category
	product.Description = req.Description
	product.Price = req.Price
	product.Status = req.Status
	product.IsActive = req.IsActive == nil || *req.IsActive

	if err := h.service.UpdateProduct(product); err != nil {
		return serviceError(c, err)
	}

	updated, err := h.service.GetProduct(product.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewProductDetailResponse(updated, h.mediaURL))
}

// HandlePatch applies a partial update to a product.
func (h *ProductHandler) HandlePatch(c *fiber.Ctx) error {
	var req ProductPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Category != nil {
		product.CategoryID = req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.service.UpdateProduct(product); err != nil {
		return serviceError(c, err)
	}

	updated, err := h.service.GetProduct(product.ID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewProductDetailResponse(updated, h.mediaURL))
}

// HandleDelete deletes a product together with its images.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleToggleActive flips the product's is_active flag and returns the
// updated product in the detail shape.
func (h *ProductHandler) HandleToggleActive(c *fiber.Ctx) error {
	product, err := h.service.ToggleActive(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewProductDetailResponse(product, h.mediaURL))
}

// HandleListImages returns a product's images in display order.
func (h *ProductHandler) HandleListImages(c *fiber.Ctx) error {
	images, err := h.imageService.ListImages(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	response := make([]ImageResponse, len(images))
	for i := range images {
		response[i] = NewImageResponse(&images[i], h.mediaURL)
	}
	return c.JSON(response)
}

// ImageRequest is the JSON request body for adding or updating an image
// by direct URL.
type ImageRequest struct {
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
	Order    int    `json:"order" validate:"gte=0"`
}

// ImagePatchRequest is the request body for a partial image update.
type ImagePatchRequest struct {
	ImageURL *string `json:"image_url" validate:"omitempty,url,max=500"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
}

// HandleCreateImage adds an image to a product, sourced from an uploaded
// multipart file (field "image") or from a JSON image_url.
func (h *ProductHandler) HandleCreateImage(c *fiber.Ctx) error {
	image := models.ProductImage{ProductID: c.Params("id")}

	if file, err := c.FormFile("image"); err == nil {
		relPath, saveErr := h.saveUpload(c, file)
		if saveErr != nil {
			return serviceError(c, saveErr)
		}
		image.FilePath = relPath
		if order, convErr := strconv.Atoi(c.FormValue("order")); convErr == nil && order >= 0 {
			image.Position = order
		}
	} else {
		var req ImageRequest
		if parseErr := c.BodyParser(&req); parseErr != nil {
			return bodyParseError(c, parseErr)
		}
		if valErr := h.validate.Struct(req); valErr != nil {
			return structValidationError(c, valErr)
		}
		image.ImageURL = req.ImageURL
		image.Position = req.Order
	}

	if err := h.imageService.SaveImage(&image); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(NewImageResponse(&image, h.mediaURL))
}

// HandleUpdateImage updates an image's URL or display order.
func (h *ProductHandler) HandleUpdateImage(c *fiber.Ctx) error {
	var req ImagePatchRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	image, err := h.imageService.GetImage(c.Params("id"), c.Params("imageID"))
	if err != nil {
		return serviceError(c, err)
	}

	if req.ImageURL != nil {
		image.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		image.Position = *req.Order
	}

	if err := h.imageService.SaveImage(image); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewImageResponse(image, h.mediaURL))
}

// HandleDeleteImage removes one of a product's images.
func (h *ProductHandler) HandleDeleteImage(c *fiber.Ctx) error {
	if err := h.imageService.DeleteImage(c.Params("id"), c.Params("imageID")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// saveUpload writes an uploaded file under the media root, in a
// date-partitioned folder, and returns its media-relative path.
func (h *ProductHandler) saveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	relPath := filepath.Join("products", time.Now().Format("2006/01/02"),
		fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename)))
	fullPath := filepath.Join(h.mediaRoot, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare media directory: %w", err)
	}
	if err := c.SaveFile(file, fullPath); err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return filepath.ToSlash(relPath), nil
}
