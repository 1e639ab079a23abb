package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportInventoryReport exports the product catalog with stock valuation.
// @Summary Export inventory report
// @Description Export every active product with its stock, minimum stock and valuation to an Excel file
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel file"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/reports/inventory [get]
func ExportInventoryReport(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := db.Query(`
			SELECT p.code, p.name, COALESCE(pc.name, ''), p.unit, p.stock, p.min_stock, p.reference_price
			FROM products p
			LEFT JOIN product_categories pc ON pc.id = p.category_id
			WHERE p.deleted_at IS NULL AND p.active
			ORDER BY p.code`)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query products", "details": err.Error()})
			return
		}
		defer rows.Close()

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Inventario"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Código", "Nombre", "Categoría", "Unidad", "Stock", "Stock Mínimo", "Precio Ref.", "Valorizado"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}
		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"295490"}, Pattern: 1},
		})
		f.SetCellStyle(sheet, "A1", "H1", headerStyle)

		rowNum := 2
		for rows.Next() {
			var code, name, category, unit string
			var stock, minStock int
			var referencePrice float64
			if err := rows.Scan(&code, &name, &category, &unit, &stock, &minStock, &referencePrice); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan product row", "details": err.Error()})
				return
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), code)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), name)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), category)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), unit)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), stock)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), minStock)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), referencePrice)
			f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), float64(stock)*referencePrice)
			rowNum++
		}
		if err := rows.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to iterate products", "details": err.Error()})
			return
		}

		filename := fmt.Sprintf("inventario_%s.xlsx", time.Now().Format("2006-01-02"))
		escaped := url.PathEscape(filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", filename, escaped))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}

// ExportPurchasesReport exports issued purchase orders within a date range.
// @Summary Export purchases report
// @Description Export purchase orders grouped by supplier for the given period to an Excel file
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/reports/purchases [get]
func ExportPurchasesReport(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := c.DefaultQuery("from", time.Now().AddDate(0, -1, 0).Format("2006-01-02"))
		to := c.DefaultQuery("to", time.Now().Format("2006-01-02"))
		if _, err := time.Parse("2006-01-02", from); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		if _, err := time.Parse("2006-01-02", to); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}

		rows, err := db.Query(`
			SELECT po.number, s.business_name, po.status, po.total, po.created_at
			FROM purchase_orders po
			JOIN suppliers s ON s.id = po.supplier_id
			WHERE po.deleted_at IS NULL
			  AND po.created_at >= $1::date
			  AND po.created_at < $2::date + INTERVAL '1 day'
			ORDER BY s.business_name, po.created_at`, from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query purchase orders", "details": err.Error()})
			return
		}
		defer rows.Close()

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Compras"
		f.SetSheetName("Sheet1", sheet)

		f.SetCellValue(sheet, "A1", "Reporte de Compras")
		f.SetCellValue(sheet, "A2", "Desde")
		f.SetCellValue(sheet, "B2", from)
		f.SetCellValue(sheet, "A3", "Hasta")
		f.SetCellValue(sheet, "B3", to)

		headers := []string{"Orden", "Proveedor", "Estado", "Total", "Fecha"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 5)
			f.SetCellValue(sheet, cell, h)
		}
		headerStyle, _ := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Color: []string{"295490"}, Pattern: 1},
		})
		f.SetCellStyle(sheet, "A5", "E5", headerStyle)

		rowNum := 6
		var grandTotal float64
		for rows.Next() {
			var number, supplier, status string
			var total float64
			var createdAt time.Time
			if err := rows.Scan(&number, &supplier, &status, &total, &createdAt); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan order row", "details": err.Error()})
				return
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), number)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), supplier)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), status)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), total)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), createdAt.Format("2006-01-02"))
			grandTotal += total
			rowNum++
		}
		if err := rows.Err(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to iterate orders", "details": err.Error()})
			return
		}

		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), "Total")
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), grandTotal)

		filename := fmt.Sprintf("compras_%s_%s.xlsx", from, to)
		escaped := url.PathEscape(filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", filename, escaped))
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing Excel file"})
			return
		}
	}
}
