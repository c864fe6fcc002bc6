package handlers

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination defaults for list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is the envelope every paginated list endpoint returns.
type Page struct {
	Count       int64       `json:"count"`
	TotalPages  int         `json:"total_pages"`
	CurrentPage int         `json:"current_page"`
	PageSize    int         `json:"page_size"`
	Next        *string     `json:"next"`
	Previous    *string     `json:"previous"`
	Results     interface{} `json:"results"`
}

// ParsePageParams reads the page and page_size query parameters,
// applying the default and clamping page_size to the maximum. Invalid
// values fall back to the defaults.
func ParsePageParams(c *fiber.Ctx) (page, pageSize int) {
	page = 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v >= 1 {
		page = v
	}

	pageSize = DefaultPageSize
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil && v >= 1 {
		pageSize = v
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// NewPage builds the pagination envelope. A page past the end yields an
// empty results array with the real total_pages. Next and previous links
// preserve the request's other query parameters.
func NewPage(c *fiber.Ctx, count int64, page, pageSize int, results interface{}) Page {
	totalPages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	var next, previous *string
	if page < totalPages {
		next = pageLink(c, page+1, pageSize)
	}
	if page > 1 {
		previous = pageLink(c, page-1, pageSize)
	}

	return Page{
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
		Next:        next,
		Previous:    previous,
		Results:     results,
	}
}

func pageLink(c *fiber.Ctx, page, pageSize int) *string {
	values := url.Values{}
	for key, value := range c.Queries() {
		values.Set(key, value)
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("page_size", strconv.Itoa(pageSize))

	link := fmt.Sprintf("%s%s?%s", c.BaseURL(), c.Path(), values.Encode())
	return &link
}
