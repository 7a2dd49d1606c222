package catalog

import (
	"fmt"
	"io"

	"agrive-admin/internal/model"

	"github.com/tealeg/xlsx"
)

// ExportContentType is the MIME type of the exported workbook.
const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var exportHeaders = []string{
	"ID", "ProductID", "Name", "Brand", "Category", "Subcategory",
	"MRP", "Discount", "Price", "Quantity", "GST", "Stock", "OutOfStock", "Image",
}

// WriteXLSX writes rows as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []model.VariantRow) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		row.AddCell().SetValue(r.ID)
		row.AddCell().SetValue(r.ProductID)
		row.AddCell().SetValue(r.Name)
		row.AddCell().SetValue(r.Brand)
		row.AddCell().SetValue(r.Category)
		row.AddCell().SetValue(r.Subcategory)
		row.AddCell().SetFloat(r.MRP)
		row.AddCell().SetFloat(r.Discount)
		row.AddCell().SetFloat(r.Price)
		row.AddCell().SetValue(r.QuantityDisplay)
		row.AddCell().SetFloat(r.GST)
		row.AddCell().SetValue(r.StockDisplay)
		row.AddCell().SetBool(r.OutOfStock)
		row.AddCell().SetValue(r.ImageURL)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
