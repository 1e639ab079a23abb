package services

import (
	"fmt"
	"time"

	"github.com/BryanRF/full-version-sub000/models"
	"gorm.io/gorm"
)

// Per-row outcome of materialization. Rows are independent: a blank row is
// skipped without comment, a row with a bad price is rejected and reported,
// and everything else becomes a line item.
type rowStatus int

const (
	rowSkipped rowStatus = iota
	rowRejected
	rowAccepted
)

type rowResult struct {
	status  rowStatus
	err     string
	warning string
	item    *models.QuotationResponseItem
}

// MaterializeResult accumulates what happened across all rows of one
// materialization pass.
type MaterializeResult struct {
	Created  int
	Errors   []string
	Warnings []string
}

// evaluateRow turns one data row into a rowResult. rowNum is the spreadsheet
// row number (header included) used in user-facing messages.
func evaluateRow(row []string, rowNum int, catalog Catalog, requestedQty map[string]int) (rowResult, error) {
	code := Cell(row, ColCode)
	rawPrice := Cell(row, ColUnitPrice)

	// A row without a code or without a price is a blank/separator row,
	// not a supplier mistake.
	if code == "" || rawPrice == "" {
		return rowResult{status: rowSkipped}, nil
	}

	price := ParsePrice(rawPrice)
	if price == nil {
		return rowResult{
			status: rowRejected,
			err:    fmt.Sprintf("Fila %d: precio inválido '%s'", rowNum, rawPrice),
		}, nil
	}

	result := rowResult{status: rowAccepted}

	product, err := catalog.FindByCode(code)
	if err != nil {
		return rowResult{}, err
	}
	var productID *uint
	if product == nil {
		result.warning = fmt.Sprintf("Fila %d: código '%s' no encontrado en el catálogo", rowNum, code)
	} else {
		id := product.ID
		productID = &id
	}

	quantity := 1
	if q := ParseQuantity(Cell(row, ColQtyRequested)); q != nil && *q > 0 {
		quantity = *q
	} else if q, ok := requestedQty[NormalizeCode(code)]; ok && q > 0 {
		quantity = q
	}

	available := 0
	if q := ParseQuantity(Cell(row, ColQtyAvailable)); q != nil && *q > 0 {
		available = *q
	}

	result.item = &models.QuotationResponseItem{
		ProductID:         productID,
		ProductCode:       code,
		EntryName:         Cell(row, ColProductName),
		UnitPrice:         *price,
		QuantityQuoted:    quantity,
		QuantityAvailable: available,
		Notes:             Cell(row, ColNotes),
	}
	return result, nil
}

// materializeResponse replaces any prior response for the quotation and
// creates one line item per salvageable row. It runs inside the caller's
// transaction and is the only part of the pipeline that writes.
func materializeResponse(tx *gorm.DB, quotationID uint, sourceFile string, sheet *SheetData, catalog Catalog, requestedQty map[string]int) (*models.QuotationResponse, *MaterializeResult, error) {
	// A new upload supersedes the old answer: delete, never merge.
	var prior []models.QuotationResponse
	if err := tx.Where("quotation_id = ?", quotationID).Find(&prior).Error; err != nil {
		return nil, nil, err
	}
	for i := range prior {
		if err := tx.Where("response_id = ?", prior[i].ID).Delete(&models.QuotationResponseItem{}).Error; err != nil {
			return nil, nil, err
		}
		if err := tx.Delete(&prior[i]).Error; err != nil {
			return nil, nil, err
		}
	}

	response := &models.QuotationResponse{
		QuotationID: quotationID,
		SourceFile:  sourceFile,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(response).Error; err != nil {
		return nil, nil, err
	}

	result := &MaterializeResult{}
	for i, row := range sheet.Rows {
		rowNum := i + 2 // 1-based, header is row 1

		evaluated, err := evaluateRow(row, rowNum, catalog, requestedQty)
		if err != nil {
			return nil, nil, err
		}
		switch evaluated.status {
		case rowSkipped:
			continue
		case rowRejected:
			result.Errors = append(result.Errors, evaluated.err)
		case rowAccepted:
			if evaluated.warning != "" {
				result.Warnings = append(result.Warnings, evaluated.warning)
			}
			evaluated.item.ResponseID = response.ID
			if err := tx.Create(evaluated.item).Error; err != nil {
				return nil, nil, err
			}
			result.Created++
		}
	}

	return response, result, nil
}
