package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeds a processed quotation response with one line item linked to the
// P001 catalog product.
func seedProcessedResponse(t *testing.T, db *gorm.DB) models.QuotationResponse {
	seedUploadFixture(t, db)

	var product models.Product
	if err := db.Where("code = ?", "P001").First(&product).Error; err != nil {
		t.Fatalf("Failed to fetch seeded product: %v", err)
	}

	var quotation models.Quotation
	if err := db.First(&quotation).Error; err != nil {
		t.Fatalf("Failed to fetch seeded quotation: %v", err)
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
		EntryName:      "Cemento gris",
		UnitPrice:      decimal.RequireFromString("10.50"),
		QuantityQuoted: 50,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to seed response item: %v", err)
	}
	return response
}

func orderRouter(db *gorm.DB, notifier *mockNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/purchase-orders", CreatePurchaseOrder(db, notifier))
	r.GET("/api/purchase-orders/:id", GetPurchaseOrder(db))
	return r
}

func TestCreatePurchaseOrderEmbedsCatalogProduct(t *testing.T) {
	db := setupHandlerDB(t)
	response := seedProcessedResponse(t, db)
	notifier := &mockNotifier{}
	router := orderRouter(db, notifier)

	body := strings.NewReader(fmt.Sprintf(`{"response_id": %d, "issued_by": "mlopez"}`, response.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/purchase-orders", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.PurchaseOrder
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(created.Items) != 1 {
		t.Fatalf("Expected 1 order item, got %d", len(created.Items))
	}
	if created.Items[0].Product == nil {
		t.Fatal("Expected the catalog product embedded in the order item")
	}
	if created.Items[0].Product.Name != "Cemento Portland" {
		t.Errorf("Expected catalog name, got %s", created.Items[0].Product.Name)
	}
	if !created.Total.Equal(decimal.RequireFromString("525.00")) {
		t.Errorf("Expected total 525.00, got %s", created.Total)
	}
	if len(notifier.roleCalls) == 0 || notifier.roleCalls[0] != "Orden de compra emitida" {
		t.Errorf("Expected an order-issued notification, got %v", notifier.roleCalls)
	}

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/purchase-orders/%d", created.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var fetched models.PurchaseOrder
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(fetched.Items) != 1 || fetched.Items[0].Product == nil {
		t.Fatalf("Expected the fetched order to embed the catalog product, got %+v", fetched.Items)
	}
}

func TestCreatePurchaseOrderRejectsUnlinkedResponse(t *testing.T) {
	db := setupHandlerDB(t)
	response := seedProcessedResponse(t, db)
	notifier := &mockNotifier{}
	router := orderRouter(db, notifier)

	// Strip the product link: nothing is left to order.
	if err := db.Model(&models.QuotationResponseItem{}).
		Where("response_id = ?", response.ID).
		Update("product_id", nil).Error; err != nil {
		t.Fatalf("Failed to unlink item: %v", err)
	}

	body := strings.NewReader(fmt.Sprintf(`{"response_id": %d}`, response.ID))
	req := httptest.NewRequest(http.MethodPost, "/api/purchase-orders", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var orders int64
	db.Model(&models.PurchaseOrder{}).Count(&orders)
	if orders != 0 {
		t.Errorf("Expected no order to survive, got %d", orders)
	}
}
