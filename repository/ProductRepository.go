package repository

import (
	"errors"
	"strings"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/BryanRF/full-version-sub000/services"
	"gorm.io/gorm"
)

// ProductRepository is the catalog lookup used by the quotation ingestion
// pipeline and the product handlers.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the catalog repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// WithTx returns a repository bound to the given transaction.
func (r *ProductRepository) WithTx(tx *gorm.DB) services.Catalog {
	return &ProductRepository{db: tx}
}

// CodeSet returns every active product code, lowercased, as one snapshot.
func (r *ProductRepository) CodeSet() (map[string]bool, error) {
	var codes []string
	if err := r.db.Model(&models.Product{}).Where("active").Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		set[strings.ToLower(strings.TrimSpace(code))] = true
	}
	return set, nil
}

// FindByCode resolves a product by code, case-insensitively. A code that
// does not exist returns (nil, nil); only infrastructure failures return an
// error.
func (r *ProductRepository) FindByCode(code string) (*models.Product, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if normalized == "" {
		return nil, nil
	}
	var product models.Product
	err := r.db.Where("LOWER(code) = ?", normalized).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
