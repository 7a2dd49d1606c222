// Package catalog turns product payloads into flat, filterable variant rows.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"agrive-admin/internal/model"
)

// NoStockLabel is shown for variants without any stock entries.
const NoStockLabel = "No Stock"

// FlattenProducts emits one row per (product, variant). Products without
// variants contribute no rows. imageBase prefixes localImageUrl values.
func FlattenProducts(products []model.Product, imageBase string) []model.VariantRow {
	total := 0
	for _, p := range products {
		total += len(p.Variants)
	}

	rows := make([]model.VariantRow, 0, total)
	for _, p := range products {
		for i, v := range p.Variants {
			rows = append(rows, buildRow(p, i, v, imageBase))
		}
	}
	return rows
}

// RowID is the synthetic table id of a variant row.
func RowID(productID string, index int) string {
	return fmt.Sprintf("%s_%d", productID, index)
}

func buildRow(p model.Product, index int, v model.Variant, imageBase string) model.VariantRow {
	row := model.VariantRow{
		ID:               RowID(p.ID, index),
		ProductID:        p.ID,
		VariantID:        v.ID,
		VariantIndex:     index,
		Name:             p.Name,
		Brand:            p.Brand,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		GST:              p.GST.Float64(),
		IsLive:           p.IsLive,
		CreatedAt:        p.CreatedAt,
	}
	applyVariant(&row, v, imageBase)
	return row
}

// applyVariant copies variant fields onto row and re-derives the stock and
// display fields.
func applyVariant(row *model.VariantRow, v model.Variant, imageBase string) {
	row.VariantID = v.ID
	row.Price = v.Price.Float64()
	row.MRP = v.MRP.Float64()
	row.Discount = v.Discount.Float64()
	row.Quantity = v.Quantity.Float64()
	row.Unit = v.Unit
	row.QuantityDisplay = strings.TrimSpace(v.Quantity.String() + " " + v.Unit)
	row.WarehouseStock = StockEntries(v)
	row.HasStockEntries = len(row.WarehouseStock) > 0
	row.TotalStock = TotalStock(v)
	row.OutOfStock = IsOutOfStock(v)
	if row.HasStockEntries {
		row.StockDisplay = strconv.FormatFloat(stockSum(v), 'f', -1, 64)
	} else {
		row.StockDisplay = NoStockLabel
	}
	row.ImageURL = ResolveImageURL(v, imageBase)
}

// StockEntries returns the stock entries of a variant. A variant without a
// warehouseStock field falls back to its legacy scalar stock, if any.
func StockEntries(v model.Variant) []model.WarehouseStock {
	if v.WarehouseStock != nil {
		return v.WarehouseStock
	}
	if v.Stock != nil {
		return []model.WarehouseStock{{Stock: *v.Stock}}
	}
	return []model.WarehouseStock{}
}

// TotalStock sums the stock entries of a variant, rounded to the nearest
// unit.
func TotalStock(v model.Variant) int {
	return int(math.Round(stockSum(v)))
}

// stockSum adds the positive stock entries of a variant.
func stockSum(v model.Variant) float64 {
	total := 0.0
	for _, ws := range StockEntries(v) {
		if s := ws.Stock.Float64(); s > 0 {
			total += s
		}
	}
	return total
}

// IsOutOfStock reports whether a variant has no stock entries or every
// entry is zero.
func IsOutOfStock(v model.Variant) bool {
	for _, ws := range StockEntries(v) {
		if ws.Stock.Float64() > 0 {
			return false
		}
	}
	return true
}

// ResolveImageURL prefers the locally hosted image over the remote URL.
func ResolveImageURL(v model.Variant, imageBase string) string {
	if v.LocalImageURL != "" {
		if strings.HasPrefix(v.LocalImageURL, "http://") || strings.HasPrefix(v.LocalImageURL, "https://") {
			return v.LocalImageURL
		}
		return strings.TrimRight(imageBase, "/") + "/" + strings.TrimLeft(v.LocalImageURL, "/")
	}
	return v.ImageURL
}
