package services

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Fixed column layout of the quotation-response template. Suppliers fill the
// template downloaded from the application, so columns are addressed by
// position; header text is cosmetic.
const (
	ColCode = iota
	ColProductName
	ColCategory
	ColQtyRequested
	ColUnit
	ColQtyAvailable
	ColUnitPrice
	ColTotalPrice
	ColNotes

	TemplateColumnCount = 9
)

// TemplateHeaders are the header labels written into the downloadable
// template, in column order.
var TemplateHeaders = []string{
	"Código",
	"Producto",
	"Categoría",
	"Cant. Solicitada",
	"Unidad",
	"Cant. Disponible",
	"Precio Unitario",
	"Precio Total",
	"Observaciones",
}

// Currency prefixes suppliers commonly type into price cells. Longer
// prefixes must come first so "S/." is stripped before "S/".
var currencyPrefixes = []string{"S/.", "S/", "PEN", "USD", "US$", "$"}

// missingCodeSentinel is the placeholder some spreadsheets export into
// empty code cells; it never counts as a real product code.
const missingCodeSentinel = "missing"

// ParsePrice converts loosely formatted price text into a decimal. It
// tolerates currency prefixes and thousands separators and returns nil for
// anything empty, non-numeric or not strictly positive.
func ParsePrice(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	upper := strings.ToUpper(s)
	for _, prefix := range currencyPrefixes {
		if strings.HasPrefix(upper, prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Sign() <= 0 {
		return nil
	}
	return &d
}

// ParseQuantity converts quantity text into an int, tolerating "3.0" style
// values and thousands separators. Returns nil on any failure.
func ParseQuantity(raw string) *int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n := int(f)
	return &n
}

// Cell returns the trimmed value at the given position, or "" when the row
// is shorter than the template.
func Cell(row []string, pos int) string {
	if pos < 0 || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

// NormalizeCode lowercases and trims a product code for catalog matching.
// The "missing" sentinel normalizes to the empty string.
func NormalizeCode(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if code == missingCodeSentinel {
		return ""
	}
	return code
}
