package services

import (
	"testing"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeds one requirement quoted to two suppliers, each with a processed
// response quoting P001 at different prices. Supplier B is cheaper.
func seedComparison(t *testing.T, db *gorm.DB) uint {
	product := models.Product{Code: "P001", Name: "Cemento Portland", Active: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}

	requirement := models.Requirement{Title: "Obra enero", Status: models.RequirementStatusQuoted}
	if err := db.Create(&requirement).Error; err != nil {
		t.Fatalf("Failed to seed requirement: %v", err)
	}

	suppliers := []models.Supplier{
		{BusinessName: "Proveedor A", TaxID: "20100000001", Active: true},
		{BusinessName: "Proveedor B", TaxID: "20100000002", Active: true},
	}
	prices := []string{"12.00", "10.50"}
	for i := range suppliers {
		if err := db.Create(&suppliers[i]).Error; err != nil {
			t.Fatalf("Failed to seed supplier: %v", err)
		}
		quotation := models.Quotation{
			RequirementID: requirement.ID,
			SupplierID:    suppliers[i].ID,
			Status:        models.QuotationStatusResponded,
		}
		if err := db.Create(&quotation).Error; err != nil {
			t.Fatalf("Failed to seed quotation: %v", err)
		}
		response := models.QuotationResponse{QuotationID: quotation.ID, SourceFile: "respuesta.xlsx"}
		if err := db.Create(&response).Error; err != nil {
			t.Fatalf("Failed to seed response: %v", err)
		}
		productID := product.ID
		item := models.QuotationResponseItem{
			ResponseID:     response.ID,
			ProductID:      &productID,
			ProductCode:    "P001",
			UnitPrice:      decimal.RequireFromString(prices[i]),
			QuantityQuoted: 50,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("Failed to seed item: %v", err)
		}
	}
	return requirement.ID
}

func TestResponseCount(t *testing.T) {
	db := setupIngestDB(t)
	requirementID := seedComparison(t, db)
	service := NewComparisonService(db)

	count, err := service.ResponseCount(requirementID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 responses, got %d", count)
	}
}

func TestComparePicksCheapestOffer(t *testing.T) {
	db := setupIngestDB(t)
	requirementID := seedComparison(t, db)
	service := NewComparisonService(db)

	rows, err := service.Compare(requirementID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 compared product, got %d", len(rows))
	}

	row := rows[0]
	if row.ProductCode != "P001" {
		t.Errorf("Expected product P001, got %s", row.ProductCode)
	}
	if row.ProductName != "Cemento Portland" {
		t.Errorf("Expected catalog name, got %s", row.ProductName)
	}
	if row.BestSupplier != "Proveedor B" {
		t.Errorf("Expected Proveedor B as best, got %s", row.BestSupplier)
	}
	if !row.BestPrice.Equal(decimal.RequireFromString("10.50")) {
		t.Errorf("Expected best price 10.50, got %s", row.BestPrice)
	}
	if len(row.Offers) != 2 {
		t.Fatalf("Expected 2 offers, got %d", len(row.Offers))
	}
	if !row.Offers[0].IsBest || row.Offers[1].IsBest {
		t.Error("Expected only the cheapest offer to be marked best")
	}
	if row.Offers[0].UnitPrice.GreaterThan(row.Offers[1].UnitPrice) {
		t.Error("Expected offers sorted by ascending price")
	}
}

func TestCompareGroupsUnresolvedCodesByLiteral(t *testing.T) {
	db := setupIngestDB(t)
	requirementID := seedComparison(t, db)
	service := NewComparisonService(db)

	// One supplier also quoted an off-catalog product.
	var response models.QuotationResponse
	if err := db.First(&response).Error; err != nil {
		t.Fatalf("Failed to fetch response: %v", err)
	}
	item := models.QuotationResponseItem{
		ResponseID:     response.ID,
		ProductCode:    "X777",
		EntryName:      "Aditivo importado",
		UnitPrice:      decimal.RequireFromString("99.00"),
		QuantityQuoted: 1,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to seed off-catalog item: %v", err)
	}

	rows, err := service.Compare(requirementID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 compared products, got %d", len(rows))
	}

	var offCatalog *models.ComparisonRow
	for i := range rows {
		if rows[i].ProductCode == "X777" {
			offCatalog = &rows[i]
		}
	}
	if offCatalog == nil {
		t.Fatal("Expected the off-catalog code to show up for manual review")
	}
	if offCatalog.ProductName != "Aditivo importado" {
		t.Errorf("Expected supplier entry name as fallback, got %s", offCatalog.ProductName)
	}
}
