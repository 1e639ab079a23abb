package storage

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormDB *gorm.DB

// InitGormDB initializes the GORM database connection used by the domain
// services and the ingestion pipeline.
func InitGormDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=America/Lima",
		host, user, password, dbname, port)

	var err error
	gormDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database with GORM:", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB:", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return gormDB
}

// AutoMigrate creates or updates the schema for every model the
// application owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ProductCategory{},
		&models.Product{},
		&models.Requirement{},
		&models.RequirementDetail{},
		&models.Supplier{},
		&models.Quotation{},
		&models.QuotationResponse{},
		&models.QuotationResponseItem{},
		&models.ProcessingLog{},
		&models.Customer{},
		&models.Sale{},
		&models.SaleDetail{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.Role{},
		&models.User{},
		&models.Notification{},
		&models.ActivityLog{},
	)
}

// GetGormDB returns the GORM database instance
func GetGormDB() *gorm.DB {
	return gormDB
}
