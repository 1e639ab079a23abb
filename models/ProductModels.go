package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents one catalog entry. Codes are unique and matched
// case-insensitively everywhere in the application.
type Product struct {
	ID             uint             `gorm:"primaryKey;column:id" json:"id"`
	Code           string           `gorm:"column:code;uniqueIndex;not null" json:"code"`
	Name           string           `gorm:"column:name;not null" json:"name"`
	Description    string           `gorm:"column:description" json:"description"`
	CategoryID     *uint            `gorm:"column:category_id" json:"category_id,omitempty"`
	Category       *ProductCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Unit           string           `gorm:"column:unit;default:'UND'" json:"unit"`
	ReferencePrice decimal.Decimal  `gorm:"column:reference_price;type:numeric(12,2)" json:"reference_price"`
	Stock          int              `gorm:"column:stock;default:0" json:"stock"`
	MinStock       int              `gorm:"column:min_stock;default:0" json:"min_stock"`
	Active         bool             `gorm:"column:active;default:true" json:"active"`
	CreatedAt      time.Time        `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductCategory groups catalog products for reports and filtering
type ProductCategory struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for ProductCategory
func (ProductCategory) TableName() string {
	return "product_categories"
}
