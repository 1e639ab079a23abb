// @title           Procurement API
// @version         1.0
// @description     Back-office procurement API: catalog, requirements, supplier quotations, purchase orders and sales.

// @contact.name   API Support

// @BasePath  /

// @schemes http https
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/BryanRF/full-version-sub000/docs"
	"github.com/BryanRF/full-version-sub000/handlers"
	"github.com/BryanRF/full-version-sub000/repository"
	"github.com/BryanRF/full-version-sub000/services"
	"github.com/BryanRF/full-version-sub000/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

func main() {
	db := storage.InitDB()
	gormDB := storage.InitGormDB()

	if err := storage.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	catalog := repository.NewProductRepository(gormDB)
	ingestService := services.NewQuotationIngestService(gormDB, catalog)
	comparisonService := services.NewComparisonService(gormDB)
	notificationService := services.NewNotificationService(gormDB)

	// Nightly cleanup of read notifications and old processing logs
	c := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)
	_, err := c.AddFunc("30 2 * * *", func() {
		log.Println("Starting nightly maintenance job")
		repository.CleanupOldRecords(gormDB, 90*24*time.Hour)
		log.Println("Nightly maintenance job finished")
	})
	if err != nil {
		log.Fatalf("Failed to schedule maintenance cron job: %v", err)
	}
	c.Start()

	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	r.Use(cors.New(CORSConfig()))

	// ==================== 1. PRODUCTS ====================
	r.POST("/api/products", handlers.CreateProduct(gormDB))
	r.GET("/api/products", handlers.GetProducts(gormDB))
	r.GET("/api/products/:id", handlers.GetProduct(gormDB))
	r.PUT("/api/products/:id", handlers.UpdateProduct(gormDB))
	r.DELETE("/api/products/:id", handlers.DeleteProduct(gormDB))

	// ==================== 2. SUPPLIERS ====================
	r.POST("/api/suppliers", handlers.CreateSupplier(gormDB))
	r.GET("/api/suppliers", handlers.GetSuppliers(gormDB))
	r.PUT("/api/suppliers/:id", handlers.UpdateSupplier(gormDB))
	r.DELETE("/api/suppliers/:id", handlers.DeleteSupplier(gormDB))

	// ==================== 3. CUSTOMERS ====================
	r.POST("/api/customers", handlers.CreateCustomer(gormDB))
	r.GET("/api/customers", handlers.GetCustomers(gormDB))
	r.PUT("/api/customers/:id", handlers.UpdateCustomer(gormDB))
	r.DELETE("/api/customers/:id", handlers.DeleteCustomer(gormDB))

	// ==================== 4. REQUIREMENTS ====================
	r.POST("/api/requirements", handlers.CreateRequirement(gormDB))
	r.GET("/api/requirements", handlers.GetRequirements(gormDB))
	r.GET("/api/requirements/:id", handlers.GetRequirement(gormDB))
	r.DELETE("/api/requirements/:id", handlers.DeleteRequirement(gormDB))
	r.GET("/api/requirements/:id/comparison", handlers.CompareResponses(comparisonService))

	// ==================== 5. QUOTATIONS ====================
	r.POST("/api/quotations", handlers.CreateQuotations(gormDB, notificationService))
	r.GET("/api/quotations", handlers.GetQuotations(gormDB))
	r.GET("/api/quotations/:id/template", handlers.DownloadQuotationTemplate(gormDB))
	r.POST("/api/quotations/:id/response", handlers.UploadQuotationResponse(gormDB, ingestService, comparisonService, notificationService))
	r.GET("/api/quotations/:id/response", handlers.GetQuotationResponse(gormDB))
	r.GET("/api/quotations/:id/processing-logs", handlers.GetProcessingLogs(gormDB))

	// ==================== 6. PURCHASE ORDERS ====================
	r.POST("/api/purchase-orders", handlers.CreatePurchaseOrder(gormDB, notificationService))
	r.GET("/api/purchase-orders", handlers.GetPurchaseOrders(gormDB))
	r.GET("/api/purchase-orders/:id", handlers.GetPurchaseOrder(gormDB))
	r.PUT("/api/purchase-orders/:id/status", handlers.UpdatePurchaseOrderStatus(gormDB))
	r.GET("/api/purchase-orders/:id/pdf", handlers.GeneratePurchaseOrderPDF(gormDB))

	// ==================== 7. SALES ====================
	r.POST("/api/sales", handlers.CreateSale(gormDB, notificationService))
	r.GET("/api/sales", handlers.GetSales(gormDB))
	r.GET("/api/sales/:id", handlers.GetSale(gormDB))

	// ==================== 8. NOTIFICATIONS ====================
	r.GET("/api/notifications", handlers.GetNotifications(gormDB))
	r.PUT("/api/notifications/:id/read", handlers.MarkNotificationRead(gormDB))
	r.PUT("/api/notifications/read-all", handlers.MarkAllNotificationsRead(gormDB))

	// ==================== 9. REPORTS ====================
	r.GET("/api/reports/inventory", handlers.ExportInventoryReport(db))
	r.GET("/api/reports/purchases", handlers.ExportPurchasesReport(db))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
