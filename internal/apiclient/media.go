package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"agrive-admin/internal/model"
)

// MediaKind selects the banner or deal image collection.
type MediaKind string

// Media collections sharing the same endpoint shape.
const (
	MediaBanner MediaKind = "banner"
	MediaDeal   MediaKind = "deal"
)

func (k MediaKind) path() string {
	return "/api/" + string(k)
}

// ListMedia fetches every image of a collection.
func (c *Client) ListMedia(ctx context.Context, kind MediaKind) ([]model.MediaImage, error) {
	return getList[model.MediaImage](ctx, c, kind.path(), authNone, "data", "images")
}

// UploadMedia adds one or more images to a collection.
func (c *Client) UploadMedia(ctx context.Context, kind MediaKind, images []model.FileUpload) error {
	parts := make([]formPart, 0, len(images))
	for _, img := range images {
		parts = append(parts, filePart("image", img))
	}
	return c.doMultipart(ctx, http.MethodPost, kind.path(), parts...)
}

// ReplaceMedia swaps the image of an entry.
func (c *Client) ReplaceMedia(ctx context.Context, kind MediaKind, id string, image model.FileUpload) error {
	return c.doMultipart(ctx, http.MethodPut, kind.path()+"/"+url.PathEscape(id), filePart("image", image))
}

// DeleteMedia removes an entry.
func (c *Client) DeleteMedia(ctx context.Context, kind MediaKind, id string) error {
	return c.doJSON(ctx, http.MethodDelete, kind.path()+"/"+url.PathEscape(id), authRequired, nil, nil)
}

// ListProductImages fetches the gallery of a variant.
func (c *Client) ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error) {
	return getList[model.MediaImage](ctx, c, "/api/productImage/"+url.PathEscape(variantID), authNone, "images", "data")
}

// UploadProductImages adds images to a variant gallery.
func (c *Client) UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) error {
	parts := make([]formPart, 0, len(images)+1)
	parts = append(parts, field("variantId", variantID))
	for _, img := range images {
		parts = append(parts, filePart("images", img))
	}
	return c.doMultipart(ctx, http.MethodPost, "/api/productImage/upload", parts...)
}

// ReplaceProductImage swaps one gallery image.
func (c *Client) ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error {
	return c.doMultipart(ctx, http.MethodPut, "/api/productImage/"+url.PathEscape(id), filePart("image", image))
}

// DeleteProductImage removes one gallery image.
func (c *Client) DeleteProductImage(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/productImage/"+url.PathEscape(id), authRequired, nil, nil)
}

func (c *Client) doMultipart(ctx context.Context, method, path string, parts ...formPart) error {
	r, err := multipartRequest(method, path, authRequired, parts...)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, r)
	return err
}
