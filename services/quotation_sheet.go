package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// SheetData is the in-memory rectangular view of an uploaded response file:
// one header row plus zero or more data rows. It is rebuilt from the raw
// bytes on every ingestion attempt and never persisted.
type SheetData struct {
	Headers []string
	Rows    [][]string
}

// ColumnCount reports the width of the sheet as actually read from the
// file, independent of header labels.
func (s *SheetData) ColumnCount() int {
	return len(s.Headers)
}

// RowCount reports the number of data rows (the header excluded).
func (s *SheetData) RowCount() int {
	return len(s.Rows)
}

// ReadSheet parses uploaded spreadsheet bytes into a SheetData. Modern
// .xlsx files are read with excelize; legacy .xls files with xlsReader.
// The caller hands over the full file contents so both validation and
// materialization see the same data.
func ReadSheet(filename string, data []byte) (*SheetData, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xls") {
		rows, err = readXLSRows(data)
	} else {
		rows, err = readXLSXRows(data)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("el archivo está vacío")
	}
	return &SheetData{Headers: rows[0], Rows: rows[1:]}, nil
}

func readXLSXRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo xlsx: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("el archivo no contiene hojas")
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("no se pudieron leer las filas: %w", err)
	}
	return rows, nil
}

// readXLSRows goes through a temp file because xlsReader works with paths.
func readXLSRows(data []byte) ([][]string, error) {
	tmpFile, err := os.CreateTemp("", "respuesta-*.xls")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return nil, err
	}
	tmpFile.Close()

	book, err := xls.OpenFile(tmpFile.Name())
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el archivo xls: %w", err)
	}
	sheet, err := book.GetSheet(0)
	if err != nil || sheet == nil {
		return nil, errors.New("el archivo no contiene hojas")
	}

	var rows [][]string
	for _, xlsRow := range sheet.GetRows() {
		var rowVals []string
		for _, col := range xlsRow.GetCols() {
			rowVals = append(rowVals, col.GetString())
		}
		rows = append(rows, rowVals)
	}
	return rows, nil
}
