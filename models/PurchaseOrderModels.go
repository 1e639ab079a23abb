package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PurchaseOrderStatusIssued    = "issued"
	PurchaseOrderStatusReceived  = "received"
	PurchaseOrderStatusCancelled = "cancelled"
)

// PurchaseOrder is generated from a chosen quotation response and sent to
// the supplier. Its line items are copied from the response at creation
// time so later re-uploads never mutate an issued order.
type PurchaseOrder struct {
	ID          uint                `gorm:"primaryKey;column:id" json:"id"`
	Number      string              `gorm:"column:number;uniqueIndex;not null" json:"number"`
	QuotationID uint                `gorm:"column:quotation_id;not null" json:"quotation_id"`
	Quotation   *Quotation          `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	SupplierID  uint                `gorm:"column:supplier_id;not null" json:"supplier_id"`
	Supplier    *Supplier           `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Status      string              `gorm:"column:status;not null;default:'issued'" json:"status"`
	Total       decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null" json:"total"`
	Notes       string              `gorm:"column:notes" json:"notes"`
	IssuedBy    string              `gorm:"column:issued_by" json:"issued_by"`
	Items       []PurchaseOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time           `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName specifies the table name for PurchaseOrder
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem is one ordered product line.
type PurchaseOrderItem struct {
	ID          uint            `gorm:"primaryKey;column:id" json:"id"`
	OrderID     uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID   *uint           `gorm:"column:product_id" json:"product_id,omitempty"`
	Product     *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductCode string          `gorm:"column:product_code;not null" json:"product_code"`
	Description string          `gorm:"column:description" json:"description"`
	Quantity    int             `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null" json:"subtotal"`
}

// TableName specifies the table name for PurchaseOrderItem
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
