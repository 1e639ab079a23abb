package services

import (
	"fmt"

	"github.com/BryanRF/full-version-sub000/models"
	"gorm.io/gorm"
)

// Catalog is the read-only product lookup the validator and materializer
// cross-check supplier codes against.
type Catalog interface {
	// CodeSet returns every active product code, normalized with
	// NormalizeCode. Snapshotted once per validation pass.
	CodeSet() (map[string]bool, error)
	// FindByCode resolves a code case-insensitively. Returns nil (and no
	// error) when the code does not exist.
	FindByCode(code string) (*models.Product, error)
	// WithTx returns a catalog bound to the given transaction, so lookups
	// during materialization run on the transaction's connection.
	WithTx(tx *gorm.DB) Catalog
}

// ValidateStructure checks that the sheet has the template's shape before
// any content is inspected. Checks short-circuit: a sheet that is too
// narrow is rejected without looking at its rows.
func ValidateStructure(sheet *SheetData) *models.ValidationOutcome {
	outcome := &models.ValidationOutcome{Valid: true}

	if sheet.ColumnCount() < TemplateColumnCount {
		outcome.AddError(fmt.Sprintf(
			"El archivo debe tener al menos %d columnas según la plantilla (tiene %d)",
			TemplateColumnCount, sheet.ColumnCount()))
		return outcome
	}

	if sheet.RowCount() == 0 {
		// A header-only sheet is rejected the same as an empty one, with a
		// warning noting which case it was.
		outcome.AddWarning("El archivo solo contiene la fila de encabezados")
		outcome.AddError("El archivo no contiene filas de datos")
		return outcome
	}

	return outcome
}

// ValidateContent cross-checks product codes against the catalog and counts
// parseable prices. Total failure on either check is an error; partial
// failure only warns, so partially correct supplier files can still be
// salvaged row by row during materialization.
func ValidateContent(sheet *SheetData, catalog Catalog) (*models.ValidationOutcome, error) {
	outcome := &models.ValidationOutcome{Valid: true}

	codeSet, err := catalog.CodeSet()
	if err != nil {
		return nil, fmt.Errorf("snapshot de códigos de catálogo: %w", err)
	}

	distinct := make(map[string]bool)
	for _, row := range sheet.Rows {
		if code := NormalizeCode(Cell(row, ColCode)); code != "" {
			distinct[code] = true
		}
	}
	matched := 0
	for code := range distinct {
		if codeSet[code] {
			matched++
		}
	}
	if matched == 0 {
		outcome.AddError("No se encontraron códigos de producto válidos en el archivo")
	} else if matched*2 < len(distinct) {
		outcome.AddWarning(fmt.Sprintf(
			"Solo %d de %d códigos coinciden con el catálogo de productos", matched, len(distinct)))
	}

	priceCells, parseable := 0, 0
	for _, row := range sheet.Rows {
		raw := Cell(row, ColUnitPrice)
		if raw == "" {
			continue
		}
		priceCells++
		if ParsePrice(raw) != nil {
			parseable++
		}
	}
	if parseable == 0 {
		outcome.AddError("No se encontraron precios válidos en el archivo")
	} else if parseable*2 < priceCells {
		outcome.AddWarning(fmt.Sprintf(
			"Solo %d de %d precios tienen un formato válido", parseable, priceCells))
	}

	return outcome, nil
}
