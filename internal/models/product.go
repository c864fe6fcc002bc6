package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product status values.
const (
	StatusNew     = "new"
	StatusRegular = "regular"
)

// StatusDisplay returns the human-readable label for a product status.
func StatusDisplay(status string) string {
	if status == StatusNew {
		return "new stock arrival"
	}
	return "regular item"
}

// Product represents a catalog item. The category reference is optional
// and images are owned by the product (deleted together with it).
type Product struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string           `json:"title" gorm:"type:varchar(300);not null" validate:"required,min=1,max=300"`
	CategoryID  *string          `json:"category" gorm:"type:varchar(36);index" validate:"omitempty,uuid"`
	Category    *Category        `json:"-" gorm:"foreignKey:CategoryID"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Status      string           `json:"status" gorm:"type:varchar(20)" validate:"omitempty,oneof=new regular"`
	IsActive    bool             `json:"is_active"`
	Images      []ProductImage   `json:"-" gorm:"foreignKey:ProductID"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}
