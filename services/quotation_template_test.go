package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		input string
		want  string // "" means nil expected
	}{
		{"10.50", "10.50"},
		{"S/.10.50", "10.50"},
		{"S/ 25", "25"},
		{"PEN 100", "100"},
		{"USD 15.99", "15.99"},
		{"$1,200.00", "1200"},
		{"1,200.50", "1200.50"},
		{"  45.00  ", "45"},
		{"", ""},
		{"abc", ""},
		{"0", ""},
		{"0.00", ""},
		{"-5.00", ""},
		{"S/.", ""},
	}

	for _, c := range cases {
		got := ParsePrice(c.input)
		if c.want == "" {
			if got != nil {
				t.Errorf("ParsePrice(%q) = %s, expected nil", c.input, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParsePrice(%q) = nil, expected %s", c.input, c.want)
			continue
		}
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("ParsePrice(%q) = %s, expected %s", c.input, got, c.want)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		input string
		want  int
		isNil bool
	}{
		{"3", 3, false},
		{"3.0", 3, false},
		{"1,000", 1000, false},
		{" 7 ", 7, false},
		{"", 0, true},
		{"abc", 0, true},
	}

	for _, c := range cases {
		got := ParseQuantity(c.input)
		if c.isNil {
			if got != nil {
				t.Errorf("ParseQuantity(%q) = %d, expected nil", c.input, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseQuantity(%q) = nil, expected %d", c.input, c.want)
			continue
		}
		if *got != c.want {
			t.Errorf("ParseQuantity(%q) = %d, expected %d", c.input, *got, c.want)
		}
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"P001", "p001"},
		{"  ABC-123  ", "abc-123"},
		{"missing", ""},
		{"MISSING", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := NormalizeCode(c.input); got != c.want {
			t.Errorf("NormalizeCode(%q) = %q, expected %q", c.input, got, c.want)
		}
	}
}

func TestCellShortRow(t *testing.T) {
	row := []string{"P001", " Cemento "}

	if got := Cell(row, ColCode); got != "P001" {
		t.Errorf("Cell(ColCode) = %q", got)
	}
	if got := Cell(row, ColProductName); got != "Cemento" {
		t.Errorf("Cell(ColProductName) = %q, expected trimmed value", got)
	}
	if got := Cell(row, ColUnitPrice); got != "" {
		t.Errorf("Cell beyond row length = %q, expected empty", got)
	}
	if got := Cell(row, -1); got != "" {
		t.Errorf("Cell(-1) = %q, expected empty", got)
	}
}
