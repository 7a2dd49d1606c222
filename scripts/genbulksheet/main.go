package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"agrive-admin/internal/bulk"
	"agrive-admin/internal/catalog"

	"github.com/tealeg/xlsx"
)

var sheetHeaders = []string{
	"name", "brand", "category", "subcategory", "gst",
	"mrp", "discount", "quantity", "unit", "stock",
}

// generateBulkSheet writes a sample product sheet for bulk upload.
// Each row is one variant; rows sharing a name belong to one product.
func main() {
	dir := flag.String("dir", "data/sheets", "output directory")
	name := flag.String("name", "sample-products.xlsx", "sheet file name")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	rows := [][]any{
		{"Tomato", "Agrive Farms", "Vegetables & Fruits", "", 5.0, 50.0, 10.0, "1", "kg", 40},
		{"Tomato", "Agrive Farms", "Vegetables & Fruits", "", 5.0, 26.0, 0.0, "500", "gm", 0},
		{"Basmati Rice", "Agrive Select", "Atta, Rice & Dal", "Rice", 5.0, 120.0, 15.0, "1", "kg", 25},
	}
	for _, values := range rows {
		category, sub, unit := values[2].(string), values[3].(string), values[8].(string)
		if !catalog.IsCategory(category) || (sub != "" && !catalog.IsSubcategory(category, sub)) || !catalog.IsUnit(unit) {
			log.Fatalf("Sample row %v does not match the catalog taxonomy", values)
		}
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		log.Fatalf("Failed to create sheet: %v", err)
	}

	header := sheet.AddRow()
	for _, h := range sheetHeaders {
		header.AddCell().SetValue(h)
	}
	for _, values := range rows {
		row := sheet.AddRow()
		for _, v := range values {
			row.AddCell().SetValue(v)
		}
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}

	// Preview the sheet the same way the admin server will before upload.
	preview, err := bulk.NewSheet(*name, buf.Bytes())
	if err != nil {
		log.Fatalf("Generated sheet failed preview: %v", err)
	}

	path := filepath.Join(*dir, preview.Name)
	if err := os.WriteFile(path, preview.Data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	fmt.Printf("Created %s with %d rows\n", path, preview.Rows)
	fmt.Printf("Upload it with: POST /api/catalog/bulk {\"source\": %q}\n", preview.Name)
}
