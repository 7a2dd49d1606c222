package service

import (
	"context"
	"testing"

	"agrive-admin/internal/bulk"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const productsCSV = "name,category,mrp,discount\nRice,\"Atta, Rice & Dal\",100,10\nDal,\"Atta, Rice & Dal\",120,0\n"

func TestBulkService_Upload_Success(t *testing.T) {
	api := new(MockProductAPI)
	svc := NewBulkService(api, nil, zerolog.Nop())

	api.On("BulkUploadProducts", mock.Anything, model.FileUpload{
		FileName:    "products.csv",
		ContentType: "text/csv",
		Data:        []byte(productsCSV),
	}).Return(model.BulkUploadResult{Message: "Products uploaded", Count: 2}, nil)

	result, err := svc.Upload(context.Background(), "products.csv", []byte(productsCSV))

	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, "Products uploaded", result.Message)
	api.AssertExpectations(t)
}

func TestBulkService_Upload_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     string
		wantCode string
	}{
		{name: "unsupported extension", fileName: "products.pdf", data: "x", wantCode: model.ErrCodeUnsupportedFormat},
		{name: "empty file", fileName: "products.csv", data: "", wantCode: model.ErrCodeValidation},
		{name: "header only", fileName: "products.csv", data: "name,mrp\n", wantCode: model.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockProductAPI)
			svc := NewBulkService(api, nil, zerolog.Nop())

			_, err := svc.Upload(context.Background(), tt.fileName, []byte(tt.data))

			var domainErr *model.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			api.AssertNotCalled(t, "BulkUploadProducts", mock.Anything, mock.Anything)
		})
	}
}

func TestBulkService_UploadFromSource(t *testing.T) {
	api := new(MockProductAPI)
	loader := new(MockLoader)
	svc := NewBulkService(api, loader, zerolog.Nop())

	sheet, err := bulk.NewSheet("weekly.csv", []byte(productsCSV))
	require.NoError(t, err)

	loader.On("Load", mock.Anything, "weekly.csv").Return(sheet, nil)
	api.On("BulkUploadProducts", mock.Anything, sheet.Upload()).
		Return(model.BulkUploadResult{Message: "ok", Count: 2}, nil)

	result, err := svc.UploadFromSource(context.Background(), " weekly.csv ")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
	loader.AssertExpectations(t)
}

func TestBulkService_UploadFromSource_Errors(t *testing.T) {
	t.Run("blank source", func(t *testing.T) {
		svc := NewBulkService(new(MockProductAPI), new(MockLoader), zerolog.Nop())
		_, err := svc.UploadFromSource(context.Background(), " ")
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("no loader configured", func(t *testing.T) {
		svc := NewBulkService(new(MockProductAPI), nil, zerolog.Nop())
		_, err := svc.UploadFromSource(context.Background(), "weekly.csv")
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("load failure", func(t *testing.T) {
		loader := new(MockLoader)
		svc := NewBulkService(new(MockProductAPI), loader, zerolog.Nop())
		loader.On("Load", mock.Anything, "missing.csv").Return(nil, model.Validation("sheet not found"))

		_, err := svc.UploadFromSource(context.Background(), "missing.csv")
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestBulkService_Upload_UnknownRowCountIsSent(t *testing.T) {
	api := new(MockProductAPI)
	svc := NewBulkService(api, nil, zerolog.Nop())
	api.On("BulkUploadProducts", mock.Anything, mock.Anything).
		Return(model.BulkUploadResult{Count: 40}, nil)

	result, err := svc.Upload(context.Background(), "legacy.xls", []byte{0xD0, 0xCF, 0x11, 0xE0})

	require.NoError(t, err)
	assert.Equal(t, -1, result.Rows)
	assert.Equal(t, 40, result.Count)
}
