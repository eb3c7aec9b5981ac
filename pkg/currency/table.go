// Package currency provides the ISO 4217 code to glyph table and the
// optional YAML mapping file that overrides it.
package currency

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ledgerkit/kmm2journal/pkg/catalog"
)

// Table maps ISO 4217 currency codes to unicode glyphs.
type Table map[string]string

// DefaultTable returns the built-in code-to-glyph table.
func DefaultTable() Table {
	return Table{
		"EUR": "€",
		"TRL": "₺",
		"USD": "$",
		"CZK": "Kč",
		"HRK": "kn",
		"CRC": "₡",
		"OMR": "ر.ع.",
		"HUF": "Ft",
		"PLN": "zł",
		"KZT": "₸",
		"KGS": "С",
		"GEL": "₾",
		"INR": "₹",
		"NGN": "₦",
		"GBP": "£",
	}
}

// Symbol returns the glyph for a currency code, or the code itself when the
// table has no entry for it.
func (t Table) Symbol(code string) string {
	if glyph, ok := t[code]; ok {
		return glyph
	}
	return code
}

// Has reports whether the table carries an entry for the code.
func (t Table) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Mapping is the content of an optional YAML mapping file. Entries extend
// or override the built-in defaults.
type Mapping struct {
	CurrencySymbols map[string]string `yaml:"currency_symbols"`
	AccountRenames  map[string]string `yaml:"account_renames"`
}

// LoadMapping reads a YAML mapping file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func LoadMapping(path string) (Table, map[string]string, error) {
	table := DefaultTable()
	renames := catalog.DefaultRenames()

	if path == "" {
		return table, renames, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var mapping Mapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, nil, fmt.Errorf("failed to parse mapping file %s: %w", path, err)
	}

	for code, glyph := range mapping.CurrencySymbols {
		table[code] = glyph
	}
	for raw, canonical := range mapping.AccountRenames {
		renames[raw] = canonical
	}
	return table, renames, nil
}
