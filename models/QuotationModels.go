package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quotation statuses. A quotation is created when the requirement is sent to
// a supplier and moves forward as the supplier answers.
const (
	QuotationStatusSent      = "sent"
	QuotationStatusResponded = "responded"
	QuotationStatusOrdered   = "ordered"
)

// Quotation is one quotation request sent to one supplier for one
// requirement. The supplier answers it by uploading the filled Excel
// template; the processed answer is stored as a QuotationResponse.
type Quotation struct {
	ID            uint           `gorm:"primaryKey;column:id" json:"id"`
	RequirementID uint           `gorm:"column:requirement_id;not null;index" json:"requirement_id"`
	Requirement   *Requirement   `gorm:"foreignKey:RequirementID" json:"requirement,omitempty"`
	SupplierID    uint           `gorm:"column:supplier_id;not null" json:"supplier_id"`
	Supplier      *Supplier      `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Status        string         `gorm:"column:status;not null;default:'sent'" json:"status"`
	SentAt        time.Time      `gorm:"column:sent_at;not null" json:"sent_at"`
	DueDate       *time.Time     `gorm:"column:due_date" json:"due_date,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;not null" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Quotation
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationResponse is the durable record of one supplier's answer to one
// quotation. At most one live response exists per quotation: a new upload
// fully replaces the previous one.
type QuotationResponse struct {
	ID          uint                    `gorm:"primaryKey;column:id" json:"id"`
	QuotationID uint                    `gorm:"column:quotation_id;not null;index" json:"quotation_id"`
	SourceFile  string                  `gorm:"column:source_file" json:"source_file"`
	Items       []QuotationResponseItem `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt   time.Time               `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for QuotationResponse
func (QuotationResponse) TableName() string {
	return "quotation_responses"
}

// QuotationResponseItem is one quoted product row. ProductID is nil when the
// code in the sheet did not match any catalog product; the literal code and
// the supplier's own product name are kept for manual reconciliation.
type QuotationResponseItem struct {
	ID                uint            `gorm:"primaryKey;column:id" json:"id"`
	ResponseID        uint            `gorm:"column:response_id;not null;index" json:"response_id"`
	ProductID         *uint           `gorm:"column:product_id" json:"product_id,omitempty"`
	Product           *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductCode       string          `gorm:"column:product_code;not null" json:"product_code"`
	EntryName         string          `gorm:"column:entry_name" json:"entry_name"`
	Brand             string          `gorm:"column:brand" json:"brand"`
	Model             string          `gorm:"column:model" json:"model"`
	UnitPrice         decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null" json:"unit_price"`
	QuantityQuoted    int             `gorm:"column:quantity_quoted;not null;default:1" json:"quantity_quoted"`
	QuantityAvailable int             `gorm:"column:quantity_available;not null;default:0" json:"quantity_available"`
	DeliveryTime      string          `gorm:"column:delivery_time" json:"delivery_time"`
	Notes             string          `gorm:"column:notes" json:"notes"`
}

// TableName specifies the table name for QuotationResponseItem
func (QuotationResponseItem) TableName() string {
	return "quotation_response_items"
}

// ProcessingLog keeps an audit snapshot of each response-file ingestion
// attempt. It is operational visibility only; the pipeline does not read it.
type ProcessingLog struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	FileID         string    `gorm:"column:file_id;not null" json:"file_id"`
	QuotationID    uint      `gorm:"column:quotation_id;not null;index" json:"quotation_id"`
	FileName       string    `gorm:"column:file_name;not null" json:"file_name"`
	FileSize       int64     `gorm:"column:file_size;not null" json:"file_size"`
	Valid          bool      `gorm:"column:valid;not null" json:"valid"`
	Success        bool      `gorm:"column:success;not null" json:"success"`
	ProcessedItems int       `gorm:"column:processed_items;default:0" json:"processed_items"`
	TotalItems     int       `gorm:"column:total_items;default:0" json:"total_items"`
	ErrorCount     int       `gorm:"column:error_count;default:0" json:"error_count"`
	WarningCount   int       `gorm:"column:warning_count;default:0" json:"warning_count"`
	DurationMs     int64     `gorm:"column:duration_ms;default:0" json:"duration_ms"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for ProcessingLog
func (ProcessingLog) TableName() string {
	return "processing_logs"
}

// ValidationOutcome is the result of validating an uploaded response file
// before anything is written. Any error makes the whole outcome invalid;
// warnings never block processing.
type ValidationOutcome struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// AddError appends an error and marks the outcome invalid.
func (v *ValidationOutcome) AddError(msg string) {
	v.Errors = append(v.Errors, msg)
	v.Valid = false
}

// AddWarning appends a non-blocking warning.
func (v *ValidationOutcome) AddWarning(msg string) {
	v.Warnings = append(v.Warnings, msg)
}

// IngestionResult is the terminal value of one ingestion attempt, returned
// to the HTTP layer as-is.
type IngestionResult struct {
	Success        bool     `json:"success"`
	ResponseID     uint     `json:"respuesta_id,omitempty"`
	ProcessedItems int      `json:"processed_items"`
	TotalItems     int      `json:"total_items"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
}
