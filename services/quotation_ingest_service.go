package services

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotationIngestService drives one ingestion attempt end to end:
// validation, materialization and rollback on zero yield. It never lets a
// raw error or panic escape to the HTTP layer.
type QuotationIngestService struct {
	db      *gorm.DB
	catalog Catalog
}

// NewQuotationIngestService creates the ingestion service.
func NewQuotationIngestService(db *gorm.DB, catalog Catalog) *QuotationIngestService {
	return &QuotationIngestService{db: db, catalog: catalog}
}

// Ingest processes one uploaded response file for one quotation.
//
// The return contract mirrors the two user-facing payloads: when validation
// rejects the file, result is nil and validation carries the errors; when
// the file passes validation, result carries the ingestion outcome
// (including success=false when no row could be materialized).
func (s *QuotationIngestService) Ingest(ctx context.Context, quotationID uint, filename string, data []byte) (result *models.IngestionResult, validation *models.ValidationOutcome) {
	started := time.Now()
	fileID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ingestion of quotation %d panicked: %v", quotationID, r)
			result = &models.IngestionResult{
				Success: false,
				Errors:  []string{"Error inesperado al procesar el archivo"},
			}
			validation = nil
		}
	}()

	sheet, err := ReadSheet(filename, data)
	if err != nil {
		validation = &models.ValidationOutcome{}
		validation.AddError("No se pudo leer el archivo: " + err.Error())
		s.writeLog(quotationID, fileID, filename, int64(len(data)), false, false, 0, 0, len(validation.Errors), len(validation.Warnings), started)
		return nil, validation
	}

	validation = ValidateStructure(sheet)
	if validation.Valid {
		content, err := ValidateContent(sheet, s.catalog)
		if err != nil {
			log.Printf("content validation for quotation %d failed: %v", quotationID, err)
			return s.unexpectedFailure(), validation
		}
		validation.Errors = append(validation.Errors, content.Errors...)
		validation.Warnings = append(validation.Warnings, content.Warnings...)
		validation.Valid = validation.Valid && content.Valid
	}
	if !validation.Valid {
		s.writeLog(quotationID, fileID, filename, int64(len(data)), false, false, 0, sheet.RowCount(), len(validation.Errors), len(validation.Warnings), started)
		return nil, validation
	}

	requestedQty, err := s.requestedQuantities(quotationID)
	if err != nil {
		log.Printf("requested quantities for quotation %d: %v", quotationID, err)
		return s.unexpectedFailure(), validation
	}

	result = &models.IngestionResult{
		TotalItems: sheet.RowCount(),
		Errors:     []string{},
		Warnings:   append([]string{}, validation.Warnings...),
	}

	// One serializable transaction covers delete-prior, create and populate,
	// so two concurrent uploads for the same quotation fully serialize.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		response, mat, err := materializeResponse(tx, quotationID, filename, sheet, s.catalog.WithTx(tx), requestedQty)
		if err != nil {
			return err
		}
		result.Errors = append(result.Errors, mat.Errors...)
		result.Warnings = append(result.Warnings, mat.Warnings...)
		result.ProcessedItems = mat.Created

		if mat.Created == 0 {
			// Zero yield: no empty aggregate survives. The deletion of the
			// prior response still stands, a new upload supersedes the old
			// answer even when it salvages nothing.
			result.Success = false
			return tx.Delete(response).Error
		}

		result.Success = true
		result.ResponseID = response.ID
		return tx.Model(&models.Quotation{}).
			Where("id = ?", quotationID).
			Update("status", models.QuotationStatusResponded).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		log.Printf("materialization for quotation %d failed: %v", quotationID, err)
		return s.unexpectedFailure(), validation
	}

	s.writeLog(quotationID, fileID, filename, int64(len(data)), true, result.Success, result.ProcessedItems, result.TotalItems, len(result.Errors), len(result.Warnings), started)
	return result, validation
}

func (s *QuotationIngestService) unexpectedFailure() *models.IngestionResult {
	return &models.IngestionResult{
		Success: false,
		Errors:  []string{"Error inesperado al procesar el archivo"},
	}
}

// requestedQuantities snapshots the originally requested quantity per
// product code for the quotation's requirement, used as the default quoted
// quantity when the sheet leaves it blank.
func (s *QuotationIngestService) requestedQuantities(quotationID uint) (map[string]int, error) {
	var quotation models.Quotation
	if err := s.db.First(&quotation, quotationID).Error; err != nil {
		return nil, err
	}

	var rows []struct {
		Code     string
		Quantity int
	}
	err := s.db.Table("requirement_details").
		Select("products.code AS code, requirement_details.quantity AS quantity").
		Joins("JOIN products ON products.id = requirement_details.product_id").
		Where("requirement_details.requirement_id = ?", quotation.RequirementID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	quantities := make(map[string]int, len(rows))
	for _, r := range rows {
		quantities[NormalizeCode(r.Code)] = r.Quantity
	}
	return quantities, nil
}

func (s *QuotationIngestService) writeLog(quotationID uint, fileID, filename string, size int64, valid, success bool, processed, total, errorCount, warningCount int, started time.Time) {
	entry := models.ProcessingLog{
		FileID:         fileID,
		QuotationID:    quotationID,
		FileName:       filename,
		FileSize:       size,
		Valid:          valid,
		Success:        success,
		ProcessedItems: processed,
		TotalItems:     total,
		ErrorCount:     errorCount,
		WarningCount:   warningCount,
		DurationMs:     time.Since(started).Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("failed to write processing log for quotation %d: %v", quotationID, err)
	}
}
