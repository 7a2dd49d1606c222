// Package bulk loads product sheets for bulk import and previews their
// row counts before they are sent to the Agrive API.
package bulk

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"agrive-admin/internal/model"
)

// Accepted sheet extensions.
const (
	ExtCSV  = ".csv"
	ExtXLS  = ".xls"
	ExtXLSX = ".xlsx"
)

// MaxSheetSize bounds the size of a sheet read from any source.
const MaxSheetSize = 32 << 20

var contentTypes = map[string]string{
	ExtCSV:  "text/csv",
	ExtXLS:  "application/vnd.ms-excel",
	ExtXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// Sheet is a product sheet ready to upload.
type Sheet struct {
	Name        string
	ContentType string
	Data        []byte
	// Rows is the number of data rows, -1 when the format cannot be read
	// locally.
	Rows int
}

// Upload returns the sheet as a multipart file.
func (s *Sheet) Upload() model.FileUpload {
	return model.FileUpload{
		FileName:    s.Name,
		ContentType: s.ContentType,
		Data:        s.Data,
	}
}

// Loader defines the interface for loading product sheets.
type Loader interface {
	// Load reads the named sheet and previews its rows.
	Load(ctx context.Context, name string) (*Sheet, error)
}

// Extension returns the lower-cased extension of name if it is accepted.
func Extension(name string) (string, error) {
	ext := strings.ToLower(path.Ext(name))
	if _, ok := contentTypes[ext]; !ok {
		return "", model.NewDomainError(model.ErrCodeUnsupportedFormat,
			fmt.Sprintf("unsupported sheet %q: expected .csv, .xls or .xlsx", name))
	}
	return ext, nil
}

// NewSheet validates name, previews data and builds a Sheet.
func NewSheet(name string, data []byte) (*Sheet, error) {
	ext, err := Extension(name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, model.Validation("sheet is empty")
	}
	if len(data) > MaxSheetSize {
		return nil, tooLarge()
	}

	rows, err := CountRows(ext, data)
	if err != nil {
		return nil, model.Validation(fmt.Sprintf("sheet %q is unreadable: %v", name, err))
	}

	return &Sheet{
		Name:        path.Base(name),
		ContentType: contentTypes[ext],
		Data:        data,
		Rows:        rows,
	}, nil
}

// readAll reads r until EOF, MaxSheetSize or ctx is done.
func readAll(ctx context.Context, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(&ctxReader{ctx: ctx, r: r}, MaxSheetSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxSheetSize {
		return nil, tooLarge()
	}
	return data, nil
}

func tooLarge() error {
	return model.TooLarge(fmt.Sprintf("sheet exceeds %d bytes", MaxSheetSize))
}

// ctxReader stops reading once its context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
