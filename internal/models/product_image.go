package models

import "time"

// ProductImage holds one of a product's display images. An image is
// sourced either from an uploaded file (FilePath, relative to the media
// root) or from a direct URL; at least one must be set. The column for
// the display position is named "position" because "order" is a reserved
// word in SQL.
type ProductImage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);not null;index" validate:"required,uuid"`
	FilePath  string    `json:"-" gorm:"type:varchar(500)"`
	ImageURL  string    `json:"image_url" gorm:"type:varchar(500)" validate:"omitempty,url,max=500"`
	Position  int       `json:"order" gorm:"column:position" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// HasSource reports whether the image has at least one usable source.
func (i *ProductImage) HasSource() bool {
	return i.FilePath != "" || i.ImageURL != ""
}

// ResolveURL returns the single URL a client should display: the direct
// URL when set, otherwise the uploaded file's location under the media
// base, otherwise an empty string.
func (i *ProductImage) ResolveURL(mediaBase string) string {
	if i.ImageURL != "" {
		return i.ImageURL
	}
	if i.FilePath != "" {
		return mediaBase + i.FilePath
	}
	return ""
}
