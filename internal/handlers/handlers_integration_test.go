package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testEnv bundles the app and the repositories used for seeding.
type testEnv struct {
	app          *fiber.App
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	imageRepo    repositories.ImageRepository
}

// setupApp sets up a Fiber app for testing with in-memory SQLite, the
// full route layout and a seeded admin plus a non-staff user.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.Category{}, &models.Product{}, &models.ProductImage{}, &models.User{})
	assert.NoError(t, err)

	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	imageRepo := repositories.NewGORMImageRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo, categoryRepo, nil)
	imageService := services.NewImageService(imageRepo, productRepo, nil, nil, t.TempDir(), "/media/")
	authService := services.NewAuthService(userRepo, "test_jwt_secret")

	assert.NoError(t, authService.EnsureAdmin("admin", "admin@example.com", "adminpass"))

	hashed, err := bcrypt.GenerateFromPassword([]byte("viewerpass"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	assert.NoError(t, userRepo.Create(&models.User{
		Username: "viewer",
		Email:    "viewer@example.com",
		Password: string(hashed),
		IsStaff:  false,
	}))

	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService, imageService, t.TempDir(), "/media/")
	authHandler := handlers.NewAuthHandler(authService)

	app := fiber.New()
	api := app.Group("/api")
	authHandler.RegisterRoutes(api)

	catalogRoutes := api.Group("", middleware.AdminOrReadOnly(authService))
	categoryHandler.RegisterRoutes(catalogRoutes)
	productHandler.RegisterRoutes(catalogRoutes)

	return &testEnv{
		app:          app,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		imageRepo:    imageRepo,
	}
}

// TestMain runs setup and teardown for all tests
func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	code := m.Run()
	os.Exit(code)
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

func obtainToken(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/api/token/", map[string]string{
		"username": username,
		"password": password,
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens map[string]string
	decodeJSON(t, resp, &tokens)
	assert.NotEmpty(t, tokens["access"])
	return tokens["access"]
}

// pageEnvelope mirrors the pagination wrapper of list endpoints.
type pageEnvelope struct {
	Count       int64                    `json:"count"`
	TotalPages  int                      `json:"total_pages"`
	CurrentPage int                      `json:"current_page"`
	PageSize    int                      `json:"page_size"`
	Next        *string                  `json:"next"`
	Previous    *string                  `json:"previous"`
	Results     []map[string]interface{} `json:"results"`
}

func seedProduct(t *testing.T, env *testEnv, title string, categoryID *string, price string, status string, active bool, createdAt time.Time) *models.Product {
	t.Helper()
	product := &models.Product{
		Title:      title,
		CategoryID: categoryID,
		Status:     status,
		IsActive:   active,
		CreatedAt:  createdAt,
	}
	if price != "" {
		value, err := decimal.NewFromString(price)
		assert.NoError(t, err)
		product.Price = &value
	}
	assert.NoError(t, env.productRepo.Create(product))
	return product
}

func TestTokenEndpoints(t *testing.T) {
	env := setupApp(t)

	resp := doRequest(t, env.app, http.MethodPost, "/api/token/", map[string]string{
		"username": "admin",
		"password": "adminpass",
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tokens map[string]string
	decodeJSON(t, resp, &tokens)
	assert.NotEmpty(t, tokens["access"])
	assert.NotEmpty(t, tokens["refresh"])

	// Refresh yields a fresh access token.
	resp = doRequest(t, env.app, http.MethodPost, "/api/token/refresh", map[string]string{
		"refresh": tokens["refresh"],
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var refreshed map[string]string
	decodeJSON(t, resp, &refreshed)
	assert.NotEmpty(t, refreshed["access"])

	// Verify accepts a valid token and rejects garbage.
	resp = doRequest(t, env.app, http.MethodPost, "/api/token/verify", map[string]string{
		"token": tokens["access"],
	}, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPost, "/api/token/verify", map[string]string{
		"token": "not-a-token",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Bad credentials fail.
	resp = doRequest(t, env.app, http.MethodPost, "/api/token/", map[string]string{
		"username": "admin",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestReadsOpenWritesRestricted(t *testing.T) {
	env := setupApp(t)

	// Unauthenticated reads succeed.
	resp := doRequest(t, env.app, http.MethodGet, "/api/products/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/categories/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Unauthenticated writes are rejected.
	resp = doRequest(t, env.app, http.MethodPost, "/api/products/", map[string]string{"title": "X"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Authenticated non-staff writes are forbidden.
	viewerToken := obtainToken(t, env.app, "viewer", "viewerpass")
	resp = doRequest(t, env.app, http.MethodPost, "/api/products/", map[string]string{"title": "X"}, viewerToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Administrators may write.
	adminToken := obtainToken(t, env.app, "admin", "adminpass")
	resp = doRequest(t, env.app, http.MethodPost, "/api/products/", map[string]string{"title": "X"}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestCategoryLifecycle(t *testing.T) {
	env := setupApp(t)
	adminToken := obtainToken(t, env.app, "admin", "adminpass")

	// Create two categories.
	resp := doRequest(t, env.app, http.MethodPost, "/api/categories/", map[string]string{"title": "Lighting"}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var lighting map[string]interface{}
	decodeJSON(t, resp, &lighting)

	resp = doRequest(t, env.app, http.MethodPost, "/api/categories/", map[string]string{"title": "Furniture"}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var furniture map[string]interface{}
	decodeJSON(t, resp, &furniture)

	// Missing title fails validation.
	resp = doRequest(t, env.app, http.MethodPost, "/api/categories/", map[string]string{}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Listing is ordered by title ascending and carries product counts.
	lightingID := lighting["id"].(string)
	seedProduct(t, env, "Desk lamp", &lightingID, "49.90", models.StatusRegular, true, time.Now())
	seedProduct(t, env, "Old lamp", &lightingID, "9.90", models.StatusRegular, false, time.Now())

	resp = doRequest(t, env.app, http.MethodGet, "/api/categories/", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []map[string]interface{}
	decodeJSON(t, resp, &categories)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Furniture", categories[0]["title"])
	assert.Equal(t, "Lighting", categories[1]["title"])
	// Only the active product is counted.
	assert.Equal(t, float64(1), categories[1]["product_count"])

	// Update a title.
	furnitureID := furniture["id"].(string)
	resp = doRequest(t, env.app, http.MethodPut, "/api/categories/"+furnitureID, map[string]string{"title": "Home Furniture"}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated map[string]interface{}
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "Home Furniture", updated["title"])

	// Deleting the non-empty category fails with the exact count.
	resp = doRequest(t, env.app, http.MethodDelete, "/api/categories/"+lightingID, nil, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var conflict map[string]string
	decodeJSON(t, resp, &conflict)
	assert.Contains(t, conflict["error"], "2 product(s)")

	// The category and its products are untouched.
	resp = doRequest(t, env.app, http.MethodGet, "/api/categories/"+lightingID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Deleting the empty category succeeds and removes it.
	resp = doRequest(t, env.app, http.MethodDelete, "/api/categories/"+furnitureID, nil, adminToken)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/categories/"+furnitureID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestProductFiltersSearchAndOrdering(t *testing.T) {
	env := setupApp(t)

	category := &models.Category{Title: "Lighting"}
	assert.NoError(t, env.categoryRepo.Create(category))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, env, "Desk lamp", &category.ID, "49.90", models.StatusNew, true, base)
	seedProduct(t, env, "Floor lamp", &category.ID, "89.00", models.StatusNew, false, base.Add(time.Hour))
	seedProduct(t, env, "Wool rug", nil, "120.00", models.StatusRegular, true, base.Add(2*time.Hour))
	seedProduct(t, env, "Ceiling light", &category.ID, "15.50", models.StatusNew, true, base.Add(3*time.Hour))

	// Both filters applied together.
	resp := doRequest(t, env.app, http.MethodGet, "/api/products/?status=new&is_active=true", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page pageEnvelope
	decodeJSON(t, resp, &page)
	assert.Equal(t, int64(2), page.Count)
	// Default ordering is most-recently-created first.
	assert.Equal(t, "Ceiling light", page.Results[0]["title"])
	assert.Equal(t, "Desk lamp", page.Results[1]["title"])

	// Substring search over title and description.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/?search=lamp", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Equal(t, int64(2), page.Count)

	// Explicit ascending price ordering.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/?ordering=price", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Equal(t, "Ceiling light", page.Results[0]["title"])
	assert.Equal(t, "Wool rug", page.Results[3]["title"])

	// Category filter.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/?category="+category.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Equal(t, int64(3), page.Count)
	assert.Equal(t, "Lighting", page.Results[0]["category_name"])

	// The list shape omits the detail-only fields.
	_, hasDescription := page.Results[0]["description"]
	assert.False(t, hasDescription)
	_, hasIsActive := page.Results[0]["is_active"]
	assert.False(t, hasIsActive)
}

func TestByCategoryAndNewArrivals(t *testing.T) {
	env := setupApp(t)

	category := &models.Category{Title: "Lighting"}
	assert.NoError(t, env.categoryRepo.Create(category))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	seedProduct(t, env, "Desk lamp", &category.ID, "49.90", models.StatusNew, true, base)
	seedProduct(t, env, "Floor lamp", &category.ID, "89.00", models.StatusRegular, true, base.Add(time.Hour))
	seedProduct(t, env, "Hidden lamp", &category.ID, "5.00", models.StatusNew, false, base.Add(2*time.Hour))
	seedProduct(t, env, "Wool rug", nil, "120.00", models.StatusNew, true, base.Add(3*time.Hour))

	// Missing category_id is a client error.
	resp := doRequest(t, env.app, http.MethodGet, "/api/products/by_category", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/products/by_category?category_id="+category.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page pageEnvelope
	decodeJSON(t, resp, &page)
	assert.Equal(t, int64(3), page.Count)

	// New arrivals are new-status active products only.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/new_arrivals", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Equal(t, int64(2), page.Count)
	assert.Equal(t, "Wool rug", page.Results[0]["title"])
	assert.Equal(t, "Desk lamp", page.Results[1]["title"])
}

func TestProductCRUDAndDetailShape(t *testing.T) {
	env := setupApp(t)
	adminToken := obtainToken(t, env.app, "admin", "adminpass")

	category := &models.Category{Title: "Lighting"}
	assert.NoError(t, env.categoryRepo.Create(category))

	// Create with full payload.
	resp := doRequest(t, env.app, http.MethodPost, "/api/products/", map[string]interface{}{
		"title":       "Desk lamp",
		"category":    category.ID,
		"description": "Adjustable brass desk lamp",
		"price":       "49.90",
		"status":      "new",
	}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decodeJSON(t, resp, &created)
	productID := created["id"].(string)
	assert.Equal(t, "new stock arrival", created["status_display"])
	assert.Equal(t, true, created["is_active"])
	assert.Equal(t, "Lighting", created["category_name"])

	// A product referencing an unknown category is rejected.
	resp = doRequest(t, env.app, http.MethodPost, "/api/products/", map[string]interface{}{
		"title":    "Orphan",
		"category": "3f0a36a4-9f5d-4f77-9b8e-aaaaaaaaaaaa",
	}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Detail shape carries description, activity and update time.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/"+productID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var detail map[string]interface{}
	decodeJSON(t, resp, &detail)
	assert.Equal(t, "Adjustable brass desk lamp", detail["description"])
	assert.Contains(t, detail, "is_active")
	assert.Contains(t, detail, "updated_at")

	// Partial update changes only the provided fields.
	resp = doRequest(t, env.app, http.MethodPatch, "/api/products/"+productID, map[string]interface{}{
		"status": "regular",
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &detail)
	assert.Equal(t, "regular", detail["status"])
	assert.Equal(t, "regular item", detail["status_display"])
	assert.Equal(t, "Desk lamp", detail["title"])

	// Full update replaces the writable fields.
	resp = doRequest(t, env.app, http.MethodPut, "/api/products/"+productID, map[string]interface{}{
		"title":  "Brass desk lamp",
		"status": "regular",
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &detail)
	assert.Equal(t, "Brass desk lamp", detail["title"])
	assert.Equal(t, "", detail["description"])

	// Delete removes the product.
	resp = doRequest(t, env.app, http.MethodDelete, "/api/products/"+productID, nil, adminToken)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodGet, "/api/products/"+productID, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestToggleActiveTwiceRestoresState(t *testing.T) {
	env := setupApp(t)
	adminToken := obtainToken(t, env.app, "admin", "adminpass")

	product := seedProduct(t, env, "Desk lamp", nil, "49.90", models.StatusRegular, true, time.Now())

	resp := doRequest(t, env.app, http.MethodPost, "/api/products/"+product.ID+"/toggle_active", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var first map[string]interface{}
	decodeJSON(t, resp, &first)
	assert.Equal(t, false, first["is_active"])

	resp = doRequest(t, env.app, http.MethodPost, "/api/products/"+product.ID+"/toggle_active", nil, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var second map[string]interface{}
	decodeJSON(t, resp, &second)
	assert.Equal(t, true, second["is_active"])

	// Toggling requires admin rights.
	resp = doRequest(t, env.app, http.MethodPost, "/api/products/"+product.ID+"/toggle_active", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPagination(t *testing.T) {
	env := setupApp(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProduct(t, env, fmt.Sprintf("Product %d", i), nil, "10.00", models.StatusRegular, true, base.Add(time.Duration(i)*time.Minute))
	}

	// page_size above the maximum is clamped to 100.
	resp := doRequest(t, env.app, http.MethodGet, "/api/products/?page_size=150", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var page pageEnvelope
	decodeJSON(t, resp, &page)
	assert.Equal(t, 100, page.PageSize)
	assert.Equal(t, int64(5), page.Count)

	// A page past the end yields empty results with the real total.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/?page=99&page_size=2", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Empty(t, page.Results)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(5), page.Count)

	// A middle page links both neighbours.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/?page=2&page_size=2", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &page)
	assert.Len(t, page.Results, 2)
	assert.Equal(t, 2, page.CurrentPage)
	assert.NotNil(t, page.Next)
	assert.NotNil(t, page.Previous)
	assert.Contains(t, *page.Next, "page=3")
	assert.Contains(t, *page.Previous, "page=1")
}

func TestImageEndpointsAndCascade(t *testing.T) {
	env := setupApp(t)
	adminToken := obtainToken(t, env.app, "admin", "adminpass")

	product := seedProduct(t, env, "Desk lamp", nil, "49.90", models.StatusRegular, true, time.Now())
	imagesPath := "/api/products/" + product.ID + "/images"

	// An image without any source is rejected.
	resp := doRequest(t, env.app, http.MethodPost, imagesPath, map[string]interface{}{}, adminToken)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// URL-sourced images, deliberately created out of display order.
	resp = doRequest(t, env.app, http.MethodPost, imagesPath, map[string]interface{}{
		"image_url": "https://cdn.example.com/lamp-side.jpg",
		"order":     2,
	}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, env.app, http.MethodPost, imagesPath, map[string]interface{}{
		"image_url": "https://cdn.example.com/lamp-front.jpg",
		"order":     1,
	}, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var front map[string]interface{}
	decodeJSON(t, resp, &front)
	assert.Equal(t, "https://cdn.example.com/lamp-front.jpg", front["image"])

	// Listing returns display order, lowest position first.
	resp = doRequest(t, env.app, http.MethodGet, imagesPath, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var images []map[string]interface{}
	decodeJSON(t, resp, &images)
	assert.Len(t, images, 2)
	assert.Equal(t, float64(1), images[0]["order"])
	assert.Equal(t, float64(2), images[1]["order"])

	// The product shapes embed the resolved image URLs.
	resp = doRequest(t, env.app, http.MethodGet, "/api/products/"+product.ID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var detail map[string]interface{}
	decodeJSON(t, resp, &detail)
	embedded := detail["images"].([]interface{})
	assert.Len(t, embedded, 2)
	assert.Equal(t, "https://cdn.example.com/lamp-front.jpg", embedded[0].(map[string]interface{})["image"])

	// Reordering through the image patch endpoint.
	imageID := front["id"].(string)
	resp = doRequest(t, env.app, http.MethodPatch, imagesPath+"/"+imageID, map[string]interface{}{
		"order": 5,
	}, adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var patched map[string]interface{}
	decodeJSON(t, resp, &patched)
	assert.Equal(t, float64(5), patched["order"])

	// Deleting the product removes its images as well.
	resp = doRequest(t, env.app, http.MethodDelete, "/api/products/"+product.ID, nil, adminToken)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	remaining, err := env.imageRepo.ListByProduct(product.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}
