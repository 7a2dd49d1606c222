package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"agrive-admin/internal/model"
)

// maxProductPages caps pagination when the API reports a runaway totalPages.
const maxProductPages = 1000

// ListProductsPage fetches one page of products. A bare array response is
// treated as a single page.
func (c *Client) ListProductsPage(ctx context.Context, page, limit int) (model.ProductPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/api/user/products?" + q.Encode(),
		auth:   authNone,
	})
	if err != nil {
		return model.ProductPage{}, err
	}

	products, err := decodeList[model.Product](body, "products", "data")
	if err != nil {
		return model.ProductPage{}, err
	}

	result := model.ProductPage{Products: products, TotalPages: 1}
	var envelope struct {
		TotalPages *model.Number `json:"totalPages"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.TotalPages != nil {
		result.TotalPages = envelope.TotalPages.Int()
	}
	return result, nil
}

// ListProducts fetches every page of products.
func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	first, err := c.ListProductsPage(ctx, 1, c.pageSize)
	if err != nil {
		return nil, err
	}

	products := first.Products
	total := first.TotalPages
	if total > maxProductPages {
		c.logger.Warn().Int("total_pages", total).Msg("capping product pagination")
		total = maxProductPages
	}

	for page := 2; page <= total; page++ {
		next, err := c.ListProductsPage(ctx, page, c.pageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product page %d: %w", page, err)
		}
		if len(next.Products) == 0 {
			break
		}
		products = append(products, next.Products...)
	}
	return products, nil
}

// CreateProduct creates a product with all of its variants.
func (c *Client) CreateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error) {
	var resp model.MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/admin/products", authRequired, p, &resp)
	return resp, err
}

// UpdateProduct replaces a product with a JSON body.
func (c *Client) UpdateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error) {
	var resp model.MessageResponse
	err := c.doJSON(ctx, http.MethodPut, "/api/admin/products/"+url.PathEscape(p.ID), authRequired, p, &resp)
	return resp, err
}

// UpdateProductWithImage replaces a product with a multipart body carrying
// the new variant image. Variants travel as a JSON string field.
func (c *Client) UpdateProductWithImage(ctx context.Context, p model.Product, image model.FileUpload) (model.MessageResponse, error) {
	variants, err := json.Marshal(p.Variants)
	if err != nil {
		return model.MessageResponse{}, fmt.Errorf("failed to encode variants: %w", err)
	}

	r, err := multipartRequest(http.MethodPut, "/api/admin/products/"+url.PathEscape(p.ID), authRequired,
		field("name", p.Name),
		field("brand", p.Brand),
		field("description", p.Description),
		field("shortDescription", p.ShortDescription),
		field("category", p.Category),
		field("subcategory", p.Subcategory),
		field("gst", p.GST.String()),
		field("isLive", strconv.FormatBool(p.IsLive)),
		field("variants", string(variants)),
		filePart("image", image),
	)
	if err != nil {
		return model.MessageResponse{}, err
	}

	body, err := c.do(ctx, r)
	if err != nil {
		return model.MessageResponse{}, err
	}
	var resp model.MessageResponse
	return resp, decode(body, &resp)
}

// DeleteProduct deletes a product and its variants.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/products/"+url.PathEscape(id), authRequired, nil, nil)
}

// BulkUploadProducts posts a product sheet for server-side import.
func (c *Client) BulkUploadProducts(ctx context.Context, sheet model.FileUpload) (model.BulkUploadResult, error) {
	r, err := multipartRequest(http.MethodPost, "/api/admin/products/bulk", authRequired, filePart("file", sheet))
	if err != nil {
		return model.BulkUploadResult{}, err
	}
	body, err := c.do(ctx, r)
	if err != nil {
		return model.BulkUploadResult{}, err
	}
	var resp model.BulkUploadResult
	return resp, decode(body, &resp)
}
