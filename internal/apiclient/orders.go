package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"agrive-admin/internal/model"
)

// ListOrders fetches every order.
func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	return getList[model.Order](ctx, c, "/api/delivery/orders", authNone, "data", "orders")
}

// AcceptOrder assigns a delivery person to a pending order.
func (c *Client) AcceptOrder(ctx context.Context, req model.AcceptOrderRequest) (model.MessageResponse, error) {
	var resp model.MessageResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/delivery/accept", authOptional, req, &resp)
	return resp, err
}

// UpdateOrderStatus moves an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, req model.UpdateStatusRequest) (model.MessageResponse, error) {
	var resp model.MessageResponse
	err := c.doJSON(ctx, http.MethodPut, "/api/delivery/status/"+url.PathEscape(req.OrderID), authOptional, req, &resp)
	return resp, err
}

// GenerateInvoice renders an order as a PDF.
func (c *Client) GenerateInvoice(ctx context.Context, order model.Order) ([]byte, error) {
	r, err := jsonRequest(http.MethodPost, "/api/generate-invoice", authOptional, map[string]any{"order": order})
	if err != nil {
		return nil, err
	}
	body, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	return body, nil
}
