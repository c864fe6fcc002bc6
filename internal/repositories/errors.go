package repositories

import "errors"

// Sentinel errors returned by repositories when a row does not exist.
// Handlers translate these to 404 responses with errors.Is.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrImageNotFound    = errors.New("product image not found")
	ErrUserNotFound     = errors.New("user not found")
)
