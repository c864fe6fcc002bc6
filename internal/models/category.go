package models

import "time"

// Category groups products. Deleting a category never deletes its
// products; their reference is cleared instead.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null" validate:"required,min=1,max=200"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Products []Product `json:"-" gorm:"foreignKey:CategoryID"`
}
