package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the generic error payload
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ActivityLog records who did what, for the audit trail shown in the admin
type ActivityLog struct {
	ID           uint      `gorm:"primaryKey;column:id" json:"id"`
	EventContext string    `gorm:"column:event_context;not null" json:"event_context"`
	EventName    string    `gorm:"column:event_name;not null" json:"event_name"`
	Description  string    `gorm:"column:description;not null" json:"description"`
	UserName     string    `gorm:"column:user_name" json:"user_name"`
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for ActivityLog
func (ActivityLog) TableName() string {
	return "activity_log"
}

// RequirementDetailInput is one requested product line in a create request.
type RequirementDetailInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Notes     string `json:"notes"`
}

// CreateRequirementRequest is the payload for creating a requirement with
// its detail lines in one call.
type CreateRequirementRequest struct {
	Title       string                   `json:"title" binding:"required"`
	Priority    string                   `json:"priority"`
	Notes       string                   `json:"notes"`
	RequestedBy string                   `json:"requested_by"`
	NeededBy    *time.Time               `json:"needed_by"`
	Details     []RequirementDetailInput `json:"details" binding:"required"`
}

// CreateQuotationRequest creates one quotation request per supplier.
type CreateQuotationRequest struct {
	RequirementID uint       `json:"requirement_id" binding:"required"`
	SupplierIDs   []uint     `json:"supplier_ids" binding:"required"`
	DueDate       *time.Time `json:"due_date"`
}

// SaleDetailInput is one sold product line in a create request.
type SaleDetailInput struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateSaleRequest is the payload for registering a sale.
type CreateSaleRequest struct {
	CustomerID uint              `json:"customer_id" binding:"required"`
	SoldBy     string            `json:"sold_by"`
	Details    []SaleDetailInput `json:"details" binding:"required"`
}

// CreatePurchaseOrderRequest generates a purchase order from a processed
// quotation response.
type CreatePurchaseOrderRequest struct {
	ResponseID uint   `json:"response_id" binding:"required"`
	Notes      string `json:"notes"`
	IssuedBy   string `json:"issued_by"`
}

// ComparisonRow is one product's price comparison across the responses
// received for a requirement.
type ComparisonRow struct {
	ProductCode  string            `json:"product_code"`
	ProductName  string            `json:"product_name"`
	BestSupplier string            `json:"best_supplier"`
	BestPrice    decimal.Decimal   `json:"best_price"`
	Offers       []ComparisonOffer `json:"offers"`
}

// ComparisonOffer is one supplier's offer for one product.
type ComparisonOffer struct {
	ResponseID        uint            `json:"response_id"`
	SupplierName      string          `json:"supplier_name"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	QuantityAvailable int             `json:"quantity_available"`
	DeliveryTime      string          `json:"delivery_time,omitempty"`
	IsBest            bool            `json:"is_best"`
}
