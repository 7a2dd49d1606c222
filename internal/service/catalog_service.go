package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"agrive-admin/internal/catalog"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService on top of a catalog.View.
type catalogService struct {
	api    ProductAPI
	view   *catalog.View
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(api ProductAPI, view *catalog.View, logger zerolog.Logger) CatalogService {
	return &catalogService{
		api:    api,
		view:   view,
		logger: logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns the filtered rows, refetching when asked or never loaded.
func (s *catalogService) List(ctx context.Context, filter catalog.Filter, refresh bool) ([]model.VariantRow, error) {
	stock, err := catalog.ParseStockFilter(filter.Stock)
	if err != nil {
		return nil, err
	}
	filter.Stock = stock

	if refresh || !s.view.Loaded() {
		if err := s.reload(ctx); err != nil {
			return nil, err
		}
	}

	return s.view.Filtered(filter), nil
}

func (s *catalogService) reload(ctx context.Context) error {
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch products")
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	rows := s.view.Replace(products)
	s.logger.Debug().
		Int("products", len(products)).
		Int("rows", len(rows)).
		Msg("catalog refreshed")
	return nil
}

// Export writes the filtered rows as a workbook.
func (s *catalogService) Export(ctx context.Context, filter catalog.Filter, w io.Writer) error {
	rows, err := s.List(ctx, filter, false)
	if err != nil {
		return err
	}
	if err := catalog.WriteXLSX(w, rows); err != nil {
		s.logger.Error().Err(err).Msg("failed to export catalog")
		return err
	}
	return nil
}

// Taxonomy returns the shared taxonomy.
func (s *catalogService) Taxonomy() catalog.Taxonomy {
	return catalog.DefaultTaxonomy()
}

// Create validates the input and creates the product.
func (s *catalogService) Create(ctx context.Context, input model.ProductInput) (model.MessageResponse, error) {
	product, err := buildProduct(input)
	if err != nil {
		return model.MessageResponse{}, err
	}

	resp, err := s.api.CreateProduct(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", product.Name).Msg("failed to create product")
		return model.MessageResponse{}, err
	}

	s.logger.Info().
		Str("name", product.Name).
		Int("variants", len(product.Variants)).
		Msg("product created")

	// The new product id is only known after a refetch.
	if err := s.reload(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog refresh after create failed")
	}
	return resp, nil
}

// UpdateVariant applies edit to the variant at index and sends the whole
// product upstream. The view is patched only after the API accepts it.
func (s *catalogService) UpdateVariant(ctx context.Context, productID string, index int, edit model.VariantEdit, image *model.FileUpload) (model.VariantRow, error) {
	if !s.view.Loaded() {
		if err := s.reload(ctx); err != nil {
			return model.VariantRow{}, err
		}
	}

	product, ok := s.view.Product(productID)
	if !ok {
		return model.VariantRow{}, model.ErrProductNotFound
	}
	if index < 0 || index >= len(product.Variants) {
		return model.VariantRow{}, model.Validation(fmt.Sprintf("variant index %d out of range", index))
	}

	updated, err := applyEdit(product, index, edit)
	if err != nil {
		return model.VariantRow{}, err
	}

	switch edit.UploadType {
	case model.UploadTypeFile:
		if image == nil || len(image.Data) == 0 {
			return model.VariantRow{}, model.Validation("an image file is required when uploadType is file")
		}
		_, err = s.api.UpdateProductWithImage(ctx, updated, *image)
	case "", model.UploadTypeURL:
		_, err = s.api.UpdateProduct(ctx, updated)
	default:
		return model.VariantRow{}, model.Validation("uploadType must be 'url' or 'file'")
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("product_id", productID).
			Int("variant_index", index).
			Msg("failed to update variant")
		return model.VariantRow{}, err
	}

	row, _ := s.view.PatchProduct(updated, index)

	s.logger.Info().
		Str("product_id", productID).
		Int("variant_index", index).
		Float64("price", row.Price).
		Msg("variant updated")
	return row, nil
}

// Delete deletes the product and its rows.
func (s *catalogService) Delete(ctx context.Context, productID string) error {
	if err := s.api.DeleteProduct(ctx, productID); err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to delete product")
		return err
	}

	removed := s.view.RemoveProduct(productID)
	s.logger.Info().
		Str("product_id", productID).
		Int("rows_removed", removed).
		Msg("product deleted")
	return nil
}

// buildProduct validates a create payload and derives variant prices.
func buildProduct(input model.ProductInput) (model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Product{}, model.Validation("product name is required")
	}
	if err := validateCategory(input.Category, input.Subcategory); err != nil {
		return model.Product{}, err
	}
	if input.GST < 0 || input.GST > 100 {
		return model.Product{}, model.Validation("gst must be between 0 and 100")
	}
	if len(input.Variants) == 0 {
		return model.Product{}, model.Validation("at least one variant is required")
	}

	variants := make([]model.Variant, 0, len(input.Variants))
	for i, v := range input.Variants {
		if err := catalog.ValidateVariant(v); err != nil {
			return model.Product{}, model.Validation(fmt.Sprintf("variant %d: %s", i, err.Error()))
		}
		variants = append(variants, toVariant(model.Variant{}, v))
	}

	return model.Product{
		Name:             name,
		Brand:            strings.TrimSpace(input.Brand),
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Category:         input.Category,
		Subcategory:      input.Subcategory,
		GST:              model.Number(input.GST),
		IsLive:           input.IsLive,
		Variants:         variants,
	}, nil
}

// applyEdit returns a copy of p with the edit applied. p is not modified.
func applyEdit(p model.Product, index int, edit model.VariantEdit) (model.Product, error) {
	if err := catalog.ValidateVariant(patchedFields(edit.Variant)); err != nil {
		return model.Product{}, err
	}

	if edit.Name != nil {
		name := strings.TrimSpace(*edit.Name)
		if name == "" {
			return model.Product{}, model.Validation("product name is required")
		}
		p.Name = name
	}
	if edit.Brand != nil {
		p.Brand = *edit.Brand
	}
	if edit.Description != nil {
		p.Description = *edit.Description
	}
	if edit.Category != nil {
		p.Category = *edit.Category
	}
	if edit.Subcategory != nil {
		p.Subcategory = *edit.Subcategory
	}
	if edit.Category != nil || edit.Subcategory != nil {
		if err := validateCategory(p.Category, p.Subcategory); err != nil {
			return model.Product{}, err
		}
	}

	variants := make([]model.Variant, len(p.Variants))
	copy(variants, p.Variants)
	variants[index] = patchVariant(variants[index], edit.Variant)
	p.Variants = variants
	return p, nil
}

// patchedFields returns the fields set in patch as a form for validation.
// Unset fields are zero and always valid.
func patchedFields(patch model.VariantPatch) model.VariantInput {
	in := model.VariantInput{
		WarehouseStock: patch.WarehouseStock,
		ImageURL:       patch.ImageURL,
	}
	if patch.MRP != nil {
		in.MRP = *patch.MRP
	}
	if patch.Discount != nil {
		in.Discount = *patch.Discount
	}
	if patch.Quantity != nil {
		in.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		in.Unit = *patch.Unit
	}
	return in
}

// patchVariant overlays the set fields of patch onto base and re-derives
// the price from the resulting MRP and discount.
func patchVariant(base model.Variant, patch model.VariantPatch) model.Variant {
	if patch.MRP != nil {
		base.MRP = model.Number(*patch.MRP)
	}
	if patch.Discount != nil {
		base.Discount = model.Number(*patch.Discount)
	}
	if patch.Quantity != nil {
		base.Quantity = model.Number(*patch.Quantity)
	}
	if patch.Unit != nil {
		base.Unit = *patch.Unit
	}
	if patch.WarehouseStock != nil {
		base.WarehouseStock = patch.WarehouseStock
		base.Stock = nil
	}
	if patch.ImageURL != "" {
		base.ImageURL = patch.ImageURL
	}
	base.Price = model.Number(catalog.DerivePrice(base.MRP.Float64(), base.Discount.Float64()))
	return base
}

// toVariant overlays the editable fields onto base and derives the price.
func toVariant(base model.Variant, in model.VariantInput) model.Variant {
	base.MRP = model.Number(in.MRP)
	base.Discount = model.Number(in.Discount)
	base.Price = model.Number(catalog.DerivePrice(in.MRP, in.Discount))
	base.Quantity = model.Number(in.Quantity)
	base.Unit = in.Unit
	if in.WarehouseStock != nil {
		base.WarehouseStock = in.WarehouseStock
		base.Stock = nil
	}
	if in.ImageURL != "" {
		base.ImageURL = in.ImageURL
	}
	return base
}

func validateCategory(category, subcategory string) error {
	if category == "" {
		return model.Validation("category is required")
	}
	if !catalog.IsCategory(category) {
		return model.Validation("unknown category: " + category)
	}
	if subcategory != "" && !catalog.IsSubcategory(category, subcategory) {
		return model.Validation(fmt.Sprintf("subcategory %q does not belong to %q", subcategory, category))
	}
	return nil
}
