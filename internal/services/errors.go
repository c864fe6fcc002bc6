package services

import "fmt"

// ValidationError reports a business-rule violation on a single field.
// Handlers translate it to a 400 response with field-level detail.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field '%s': %s", e.Field, e.Message)
}

// CategoryNotEmptyError rejects the deletion of a category that still
// has products. The message carries the exact product count.
type CategoryNotEmptyError struct {
	Count int64
}

func (e *CategoryNotEmptyError) Error() string {
	return fmt.Sprintf("cannot delete category: it still contains %d product(s)", e.Count)
}
