package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/repository"
	"github.com/BryanRF/full-version-sub000/services"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Mock notification port
type mockNotifier struct {
	userCalls []string
	roleCalls []string
}

func (m *mockNotifier) NotifyUser(userID uint, title, message, action string) {
	m.userCalls = append(m.userCalls, title)
}

func (m *mockNotifier) NotifyRole(roleName, title, message, action string) {
	m.roleCalls = append(m.roleCalls, title)
}

// Setup test database. The shared-cache DSN keeps every pooled connection
// on the same in-memory database; a plain :memory: DSN gives each
// connection its own empty one.
func setupHandlerDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.ProductCategory{},
		&models.Product{},
		&models.Supplier{},
		&models.Requirement{},
		&models.RequirementDetail{},
		&models.Quotation{},
		&models.QuotationResponse{},
		&models.QuotationResponseItem{},
		&models.ProcessingLog{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.ActivityLog{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func seedUploadFixture(t *testing.T, db *gorm.DB) models.Quotation {
	product := models.Product{Code: "P001", Name: "Cemento Portland", Active: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	supplier := models.Supplier{BusinessName: "Proveedor A", TaxID: "20100000001", Active: true}
	if err := db.Create(&supplier).Error; err != nil {
		t.Fatalf("Failed to seed supplier: %v", err)
	}
	requirement := models.Requirement{Title: "Obra enero", Status: models.RequirementStatusQuoted}
	if err := db.Create(&requirement).Error; err != nil {
		t.Fatalf("Failed to seed requirement: %v", err)
	}
	detail := models.RequirementDetail{RequirementID: requirement.ID, ProductID: product.ID, Quantity: 50}
	if err := db.Create(&detail).Error; err != nil {
		t.Fatalf("Failed to seed detail: %v", err)
	}
	quotation := models.Quotation{
		RequirementID: requirement.ID,
		SupplierID:    supplier.ID,
		Status:        models.QuotationStatusSent,
	}
	if err := db.Create(&quotation).Error; err != nil {
		t.Fatalf("Failed to seed quotation: %v", err)
	}
	return quotation
}

func responseWorkbook(t *testing.T, rows [][]string) []byte {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for col, header := range services.TemplateHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to serialize workbook: %v", err)
	}
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

func uploadRouter(db *gorm.DB, notifier *mockNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := repository.NewProductRepository(db)
	ingest := services.NewQuotationIngestService(db, catalog)
	comparison := services.NewComparisonService(db)

	r := gin.New()
	r.POST("/api/quotations/:id/response", UploadQuotationResponse(db, ingest, comparison, notifier))
	return r
}

func TestUploadQuotationResponseOK(t *testing.T) {
	db := setupHandlerDB(t)
	quotation := seedUploadFixture(t, db)
	notifier := &mockNotifier{}
	router := uploadRouter(db, notifier)

	data := responseWorkbook(t, [][]string{
		{"P001", "Cemento Portland", "", "50", "BLS", "40", "S/.10.50", "", ""},
	})
	body, contentType := multipartUpload(t, "respuesta.xlsx", data)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/1/response", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result models.IngestionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !result.Success || result.ProcessedItems != 1 {
		t.Errorf("Unexpected result: %+v", result)
	}
	if result.ResponseID == 0 {
		t.Error("Expected respuesta_id in the payload")
	}

	if len(notifier.roleCalls) == 0 || notifier.roleCalls[0] != "Respuesta de cotización procesada" {
		t.Errorf("Expected a processed notification, got %v", notifier.roleCalls)
	}

	var quotationAfter models.Quotation
	db.First(&quotationAfter, quotation.ID)
	if quotationAfter.Status != models.QuotationStatusResponded {
		t.Errorf("Expected quotation status responded, got %s", quotationAfter.Status)
	}
}

func TestUploadQuotationResponseValidationError(t *testing.T) {
	db := setupHandlerDB(t)
	seedUploadFixture(t, db)
	notifier := &mockNotifier{}
	router := uploadRouter(db, notifier)

	// Codes unknown to the catalog make the whole file invalid.
	data := responseWorkbook(t, [][]string{
		{"X001", "Desconocido", "", "", "", "", "10.00", "", ""},
	})
	body, contentType := multipartUpload(t, "respuesta.xlsx", data)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/1/response", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var outcome models.ValidationOutcome
	if err := json.Unmarshal(w.Body.Bytes(), &outcome); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if outcome.Valid || len(outcome.Errors) == 0 {
		t.Errorf("Expected validation errors, got %+v", outcome)
	}
	if len(notifier.roleCalls) != 0 {
		t.Errorf("Expected no notifications on rejection, got %v", notifier.roleCalls)
	}
}

func TestUploadQuotationResponseZeroYield(t *testing.T) {
	db := setupHandlerDB(t)
	seedUploadFixture(t, db)
	notifier := &mockNotifier{}
	router := uploadRouter(db, notifier)

	// Validation passes (known code, one parseable price) but no row
	// materializes: the priced row has no code, the coded row a bad price.
	data := responseWorkbook(t, [][]string{
		{"", "Sin código", "", "", "", "", "10.00", "", ""},
		{"P001", "Cemento Portland", "", "50", "BLS", "", "abc", "", ""},
	})
	body, contentType := multipartUpload(t, "respuesta.xlsx", data)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/1/response", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d: %s", w.Code, w.Body.String())
	}

	var result models.IngestionResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result.Success || result.ResponseID != 0 {
		t.Errorf("Unexpected result: %+v", result)
	}

	var count int64
	db.Model(&models.QuotationResponse{}).Count(&count)
	if count != 0 {
		t.Errorf("Expected no stored response, got %d", count)
	}
}

func TestUploadQuotationResponseQuotationNotFound(t *testing.T) {
	db := setupHandlerDB(t)
	notifier := &mockNotifier{}
	router := uploadRouter(db, notifier)

	data := responseWorkbook(t, nil)
	body, contentType := multipartUpload(t, "respuesta.xlsx", data)

	req := httptest.NewRequest(http.MethodPost, "/api/quotations/99/response", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
