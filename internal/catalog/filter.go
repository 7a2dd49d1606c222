package catalog

import (
	"strings"

	"agrive-admin/internal/model"
)

// Stock filter values.
const (
	StockAll        = "all"
	StockOutOfStock = "outOfStock"
)

// Filter is the catalog screen's filter state. Zero values are no-ops.
type Filter struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	Stock    string `json:"stock"`
}

// ParseStockFilter normalises a stock filter value.
func ParseStockFilter(s string) (string, error) {
	switch s {
	case "", StockAll:
		return StockAll, nil
	case StockOutOfStock:
		return StockOutOfStock, nil
	default:
		return "", model.Validation("stock filter must be 'all' or 'outOfStock'")
	}
}

// Apply returns the rows of base that pass every active filter. The base
// slice is never modified.
func (f Filter) Apply(base []model.VariantRow) []model.VariantRow {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.VariantRow, 0, len(base))
	for _, row := range base {
		if search != "" && !matchesSearch(row, search) {
			continue
		}
		if f.Category != "" && row.Category != f.Category {
			continue
		}
		if f.Stock == StockOutOfStock && !row.OutOfStock {
			continue
		}
		out = append(out, row)
	}
	return out
}

func matchesSearch(row model.VariantRow, lowered string) bool {
	return strings.Contains(strings.ToLower(row.Name), lowered) ||
		strings.Contains(strings.ToLower(row.Brand), lowered) ||
		strings.Contains(strings.ToLower(row.ShortDescription), lowered)
}
