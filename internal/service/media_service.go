package service

import (
	"context"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// mediaService implements MediaService.
type mediaService struct {
	api    MediaAPI
	logger zerolog.Logger
}

// NewMediaService creates a new media service.
func NewMediaService(api MediaAPI, logger zerolog.Logger) MediaService {
	return &mediaService{
		api:    api,
		logger: logger.With().Str("service", "media").Logger(),
	}
}

func (s *mediaService) lister(kind apiclient.MediaKind) func(context.Context) ([]model.MediaImage, error) {
	return func(ctx context.Context) ([]model.MediaImage, error) {
		return s.api.ListMedia(ctx, kind)
	}
}

func (s *mediaService) List(ctx context.Context, kind apiclient.MediaKind) ([]model.MediaImage, error) {
	return s.api.ListMedia(ctx, kind)
}

func (s *mediaService) Upload(ctx context.Context, kind apiclient.MediaKind, images []model.FileUpload) ([]model.MediaImage, error) {
	if err := validateImages(images); err != nil {
		return nil, err
	}
	logger := s.logger.With().Str("kind", string(kind)).Logger()
	return mutateAndList(ctx, logger, "upload", func() error {
		return s.api.UploadMedia(ctx, kind, images)
	}, s.lister(kind))
}

func (s *mediaService) Replace(ctx context.Context, kind apiclient.MediaKind, id string, image model.FileUpload) ([]model.MediaImage, error) {
	if err := validateImages([]model.FileUpload{image}); err != nil {
		return nil, err
	}
	logger := s.logger.With().Str("kind", string(kind)).Logger()
	return mutateAndList(ctx, logger, "replace", func() error {
		return s.api.ReplaceMedia(ctx, kind, id, image)
	}, s.lister(kind))
}

func (s *mediaService) Delete(ctx context.Context, kind apiclient.MediaKind, id string) ([]model.MediaImage, error) {
	logger := s.logger.With().Str("kind", string(kind)).Logger()
	return mutateAndList(ctx, logger, "delete", func() error {
		return s.api.DeleteMedia(ctx, kind, id)
	}, s.lister(kind))
}

func (s *mediaService) ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error) {
	return s.api.ListProductImages(ctx, variantID)
}

func (s *mediaService) UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) ([]model.MediaImage, error) {
	if variantID == "" {
		return nil, model.Validation("variantId is required")
	}
	if err := validateImages(images); err != nil {
		return nil, err
	}
	logger := s.logger.With().Str("variant_id", variantID).Logger()
	return mutateAndList(ctx, logger, "upload", func() error {
		return s.api.UploadProductImages(ctx, variantID, images)
	}, func(ctx context.Context) ([]model.MediaImage, error) {
		return s.api.ListProductImages(ctx, variantID)
	})
}

// ReplaceProductImage swaps one gallery image. Callers refetch the gallery
// by variant id.
func (s *mediaService) ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error {
	if err := validateImages([]model.FileUpload{image}); err != nil {
		return err
	}
	if err := s.api.ReplaceProductImage(ctx, id, image); err != nil {
		s.logger.Error().Err(err).Str("image_id", id).Msg("failed to replace product image")
		return err
	}
	s.logger.Info().Str("image_id", id).Msg("product image replaced")
	return nil
}

// DeleteProductImage removes one gallery image.
func (s *mediaService) DeleteProductImage(ctx context.Context, id string) error {
	if err := s.api.DeleteProductImage(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("image_id", id).Msg("failed to delete product image")
		return err
	}
	s.logger.Info().Str("image_id", id).Msg("product image deleted")
	return nil
}
