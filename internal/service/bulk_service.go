package service

import (
	"context"
	"strings"

	"agrive-admin/internal/bulk"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// bulkService implements BulkService.
type bulkService struct {
	api    ProductAPI
	loader bulk.Loader
	logger zerolog.Logger
}

// NewBulkService creates a new bulk import service. loader may be nil when
// no sheet store is configured.
func NewBulkService(api ProductAPI, loader bulk.Loader, logger zerolog.Logger) BulkService {
	return &bulkService{
		api:    api,
		loader: loader,
		logger: logger.With().Str("service", "bulk").Logger(),
	}
}

// Upload previews and imports an uploaded sheet.
func (s *bulkService) Upload(ctx context.Context, name string, data []byte) (model.BulkUploadResult, error) {
	sheet, err := bulk.NewSheet(name, data)
	if err != nil {
		s.logger.Warn().Err(err).Str("file", name).Msg("rejected bulk sheet")
		return model.BulkUploadResult{}, err
	}
	return s.send(ctx, sheet)
}

// UploadFromSource loads a sheet from the sheet store and imports it.
func (s *bulkService) UploadFromSource(ctx context.Context, source string) (model.BulkUploadResult, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return model.BulkUploadResult{}, model.Validation("source is required")
	}
	if s.loader == nil {
		return model.BulkUploadResult{}, model.Validation("no bulk sheet store is configured")
	}

	sheet, err := s.loader.Load(ctx, source)
	if err != nil {
		s.logger.Error().Err(err).Str("source", source).Msg("failed to load bulk sheet")
		return model.BulkUploadResult{}, err
	}
	return s.send(ctx, sheet)
}

func (s *bulkService) send(ctx context.Context, sheet *bulk.Sheet) (model.BulkUploadResult, error) {
	if sheet.Rows == 0 {
		return model.BulkUploadResult{}, model.Validation("sheet has no data rows")
	}

	result, err := s.api.BulkUploadProducts(ctx, sheet.Upload())
	if err != nil {
		s.logger.Error().Err(err).Str("file", sheet.Name).Msg("bulk upload failed")
		return model.BulkUploadResult{}, err
	}
	result.Rows = sheet.Rows

	s.logger.Info().
		Str("file", sheet.Name).
		Int("rows", sheet.Rows).
		Int("imported", result.Count).
		Msg("bulk upload completed")
	return result, nil
}
