package services

import (
	"sort"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComparisonService ranks the quotation responses received for one
// requirement, product by product. Comparison only becomes meaningful once
// two or more responses exist.
type ComparisonService struct {
	db *gorm.DB
}

// NewComparisonService creates the comparison service.
func NewComparisonService(db *gorm.DB) *ComparisonService {
	return &ComparisonService{db: db}
}

// ResponseCount returns how many live responses exist for a requirement.
func (s *ComparisonService) ResponseCount(requirementID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.QuotationResponse{}).
		Joins("JOIN quotations ON quotations.id = quotation_responses.quotation_id").
		Where("quotations.requirement_id = ?", requirementID).
		Count(&count).Error
	return count, err
}

// Compare builds the per-product price ranking across every response
// received for the requirement. Items with an unresolved product code are
// grouped by their literal code so they still show up for manual review.
func (s *ComparisonService) Compare(requirementID uint) ([]models.ComparisonRow, error) {
	var entries []struct {
		ResponseID        uint
		ProductCode       string
		EntryName         string
		ProductName       string
		SupplierName      string
		UnitPrice         decimal.Decimal
		QuantityAvailable int
		DeliveryTime      string
	}
	err := s.db.Table("quotation_response_items").
		Select(`quotation_response_items.response_id AS response_id,
			quotation_response_items.product_code AS product_code,
			quotation_response_items.entry_name AS entry_name,
			COALESCE(products.name, '') AS product_name,
			suppliers.business_name AS supplier_name,
			quotation_response_items.unit_price AS unit_price,
			quotation_response_items.quantity_available AS quantity_available,
			quotation_response_items.delivery_time AS delivery_time`).
		Joins("JOIN quotation_responses ON quotation_responses.id = quotation_response_items.response_id").
		Joins("JOIN quotations ON quotations.id = quotation_responses.quotation_id").
		Joins("JOIN suppliers ON suppliers.id = quotations.supplier_id").
		Joins("LEFT JOIN products ON products.id = quotation_response_items.product_id").
		Where("quotations.requirement_id = ?", requirementID).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[string]*models.ComparisonRow)
	var order []string
	for _, e := range entries {
		key := NormalizeCode(e.ProductCode)
		if key == "" {
			key = e.ProductCode
		}
		row, ok := grouped[key]
		if !ok {
			name := e.ProductName
			if name == "" {
				name = e.EntryName
			}
			row = &models.ComparisonRow{ProductCode: e.ProductCode, ProductName: name}
			grouped[key] = row
			order = append(order, key)
		}
		row.Offers = append(row.Offers, models.ComparisonOffer{
			ResponseID:        e.ResponseID,
			SupplierName:      e.SupplierName,
			UnitPrice:         e.UnitPrice,
			QuantityAvailable: e.QuantityAvailable,
			DeliveryTime:      e.DeliveryTime,
		})
	}

	rows := make([]models.ComparisonRow, 0, len(order))
	for _, key := range order {
		row := grouped[key]
		sort.SliceStable(row.Offers, func(i, j int) bool {
			return row.Offers[i].UnitPrice.LessThan(row.Offers[j].UnitPrice)
		})
		row.Offers[0].IsBest = true
		row.BestSupplier = row.Offers[0].SupplierName
		row.BestPrice = row.Offers[0].UnitPrice
		rows = append(rows, *row)
	}
	return rows, nil
}
