package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is one sales document with its detail lines. Creating a sale
// decrements the stock of every sold product.
type Sale struct {
	ID         uint            `gorm:"primaryKey;column:id" json:"id"`
	Number     string          `gorm:"column:number;uniqueIndex;not null" json:"number"`
	CustomerID uint            `gorm:"column:customer_id;not null" json:"customer_id"`
	Customer   *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Total      decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null" json:"total"`
	Status     string          `gorm:"column:status;not null;default:'completed'" json:"status"`
	SoldBy     string          `gorm:"column:sold_by" json:"sold_by"`
	Details    []SaleDetail    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	CreatedAt  time.Time       `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}

// SaleDetail is one sold product line.
type SaleDetail struct {
	ID        uint            `gorm:"primaryKey;column:id" json:"id"`
	SaleID    uint            `gorm:"column:sale_id;not null;index" json:"sale_id"`
	ProductID uint            `gorm:"column:product_id;not null" json:"product_id"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
}

// TableName specifies the table name for SaleDetail
func (SaleDetail) TableName() string {
	return "sale_details"
}
