package services

import (
	"strings"
	"testing"

	"github.com/BryanRF/full-version-sub000/models"
	"gorm.io/gorm"
)

// Mock catalog
type mockCatalog struct {
	codeSetFunc    func() (map[string]bool, error)
	findByCodeFunc func(code string) (*models.Product, error)
}

func (m *mockCatalog) CodeSet() (map[string]bool, error) {
	return m.codeSetFunc()
}

func (m *mockCatalog) FindByCode(code string) (*models.Product, error) {
	return m.findByCodeFunc(code)
}

func (m *mockCatalog) WithTx(tx *gorm.DB) Catalog {
	return m
}

func catalogWithCodes(codes ...string) *mockCatalog {
	set := make(map[string]bool)
	for _, c := range codes {
		set[NormalizeCode(c)] = true
	}
	return &mockCatalog{
		codeSetFunc: func() (map[string]bool, error) { return set, nil },
		findByCodeFunc: func(code string) (*models.Product, error) {
			if set[NormalizeCode(code)] {
				return &models.Product{ID: 1, Code: code}, nil
			}
			return nil, nil
		},
	}
}

func dataRow(code, price string) []string {
	row := make([]string, TemplateColumnCount)
	row[ColCode] = code
	row[ColUnitPrice] = price
	return row
}

func TestValidateStructureTooFewColumns(t *testing.T) {
	sheet := &SheetData{
		Headers: []string{"Código", "Producto", "Precio"},
		Rows:    [][]string{{"P001", "Cemento", "10.00"}},
	}

	outcome := ValidateStructure(sheet)
	if outcome.Valid {
		t.Fatal("Expected invalid outcome for narrow sheet")
	}
	if len(outcome.Errors) != 1 {
		t.Fatalf("Expected 1 error, got %d", len(outcome.Errors))
	}
	if !strings.Contains(outcome.Errors[0], "columnas") {
		t.Errorf("Unexpected error message: %s", outcome.Errors[0])
	}
}

func TestValidateStructureHeaderOnly(t *testing.T) {
	sheet := &SheetData{Headers: TemplateHeaders, Rows: nil}

	outcome := ValidateStructure(sheet)
	if outcome.Valid {
		t.Fatal("Expected invalid outcome for header-only sheet")
	}
	if len(outcome.Errors) != 1 || len(outcome.Warnings) != 1 {
		t.Fatalf("Expected 1 error and 1 warning, got %d and %d", len(outcome.Errors), len(outcome.Warnings))
	}
	if !strings.Contains(outcome.Warnings[0], "encabezados") {
		t.Errorf("Unexpected warning: %s", outcome.Warnings[0])
	}
}

func TestValidateStructureOK(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows:    [][]string{dataRow("P001", "10.00")},
	}

	outcome := ValidateStructure(sheet)
	if !outcome.Valid {
		t.Fatalf("Expected valid outcome, got errors: %v", outcome.Errors)
	}
}

func TestValidateContentNoMatchingCodes(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("X001", "10.00"),
			dataRow("X002", "20.00"),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Valid {
		t.Fatal("Expected invalid outcome when no code matches the catalog")
	}
	if !strings.Contains(outcome.Errors[0], "códigos") {
		t.Errorf("Unexpected error message: %s", outcome.Errors[0])
	}
}

func TestValidateContentMinorityMatchWarns(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("P001", "10.00"),
			dataRow("X001", "20.00"),
			dataRow("X002", "30.00"),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !outcome.Valid {
		t.Fatalf("Expected valid outcome, got errors: %v", outcome.Errors)
	}
	if len(outcome.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %v", outcome.Warnings)
	}
	if !strings.Contains(outcome.Warnings[0], "1 de 3") {
		t.Errorf("Unexpected warning: %s", outcome.Warnings[0])
	}
}

func TestValidateContentHalfMatchDoesNotWarn(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("P001", "10.00"),
			dataRow("X001", "20.00"),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !outcome.Valid || len(outcome.Warnings) != 0 {
		t.Fatalf("Expected valid outcome without warnings, got errors %v warnings %v", outcome.Errors, outcome.Warnings)
	}
}

func TestValidateContentNoParseablePrices(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("P001", "abc"),
			dataRow("P002", "gratis"),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001", "P002"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if outcome.Valid {
		t.Fatal("Expected invalid outcome when no price parses")
	}
	if !strings.Contains(outcome.Errors[0], "precios") {
		t.Errorf("Unexpected error message: %s", outcome.Errors[0])
	}
}

func TestValidateContentMinorityPricesWarn(t *testing.T) {
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("P001", "S/.10.00"),
			dataRow("P002", "abc"),
			dataRow("P003", "n/a"),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001", "P002", "P003"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !outcome.Valid {
		t.Fatalf("Expected valid outcome, got errors: %v", outcome.Errors)
	}
	found := false
	for _, w := range outcome.Warnings {
		if strings.Contains(w, "precios") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a price-format warning, got %v", outcome.Warnings)
	}
}

func TestValidateContentIgnoresEmptyPriceCells(t *testing.T) {
	// Blank price cells belong to separator rows, they must not count
	// against the parseable-price ratio.
	sheet := &SheetData{
		Headers: TemplateHeaders,
		Rows: [][]string{
			dataRow("P001", "10.00"),
			dataRow("P002", ""),
			dataRow("P003", ""),
		},
	}

	outcome, err := ValidateContent(sheet, catalogWithCodes("P001", "P002", "P003"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !outcome.Valid || len(outcome.Warnings) != 0 {
		t.Fatalf("Expected clean outcome, got errors %v warnings %v", outcome.Errors, outcome.Warnings)
	}
}
