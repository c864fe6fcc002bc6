package handlers

import (
	"catalog/internal/models"
	"catalog/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categories := router.Group("/categories")
	categories.Get("/", h.HandleList)
	categories.Post("/", h.HandleCreate)
	categories.Get("/:id", h.HandleGet)
	categories.Put("/:id", h.HandleUpdate)
	categories.Patch("/:id", h.HandleUpdate)
	categories.Delete("/:id", h.HandleDelete)
}

// CategoryRequest is the request body for creating or updating a
// category.
type CategoryRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// HandleList returns every category ordered by title, without
// pagination.
func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, counts, err := h.service.GetAllCategories()
	if err != nil {
		return serviceError(c, err)
	}

	response := make([]CategoryResponse, len(categories))
	for i := range categories {
		response[i] = NewCategoryResponse(&categories[i], counts[categories[i].ID])
	}
	return c.JSON(response)
}

// HandleCreate creates a new category.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	category := models.Category{Title: req.Title}
	if err := h.service.CreateCategory(&category); err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(NewCategoryResponse(&category, 0))
}

// HandleGet retrieves a single category.
func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	category, count, err := h.service.GetCategory(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewCategoryResponse(category, count))
}

// HandleUpdate updates a category's title. A category has a single
// writable field, so PUT and PATCH behave identically.
func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyParseError(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return structValidationError(c, err)
	}

	category, count, err := h.service.GetCategory(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	category.Title = req.Title
	if err := h.service.UpdateCategory(category); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(NewCategoryResponse(category, count))
}

// HandleDelete deletes a category. Deletion fails with 400 and the
// product count while any product still references the category.
func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.Params("id")); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
