package bulk

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"
)

// CountRows returns the number of non-blank data rows below the header.
// Legacy .xls workbooks are not parsed and report -1.
func CountRows(ext string, data []byte) (int, error) {
	switch ext {
	case ExtCSV:
		return countCSVRows(data)
	case ExtXLSX:
		return countXLSXRows(data)
	default:
		return -1, nil
	}
}

func countCSVRows(data []byte) (int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows := 0
	header := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to parse csv: %w", err)
		}
		if blank(record) {
			continue
		}
		if header {
			header = false
			continue
		}
		rows++
	}
	return rows, nil
}

func countXLSXRows(data []byte) (int, error) {
	file, err := xlsx.OpenBinary(data)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	if len(file.Sheets) == 0 {
		return 0, nil
	}

	rows := 0
	header := true
	for _, row := range file.Sheets[0].Rows {
		if row == nil {
			continue
		}
		values := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			values = append(values, cell.String())
		}
		if blank(values) {
			continue
		}
		if header {
			header = false
			continue
		}
		rows++
	}
	return rows, nil
}

func blank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
