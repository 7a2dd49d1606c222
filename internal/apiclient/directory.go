package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"agrive-admin/internal/model"
)

// ListDeliveryPersons fetches every delivery person.
func (c *Client) ListDeliveryPersons(ctx context.Context) ([]model.DeliveryPerson, error) {
	return getList[model.DeliveryPerson](ctx, c, "/api/delivery/delivery-persons", authNone, "data")
}

// CreateDeliveryPerson registers a new delivery person.
func (c *Client) CreateDeliveryPerson(ctx context.Context, p model.DeliveryPerson) error {
	return c.doJSON(ctx, http.MethodPost, "/api/delivery/registerDelivery", authOptional, p, nil)
}

// UpdateDeliveryPerson edits a delivery person.
func (c *Client) UpdateDeliveryPerson(ctx context.Context, userID string, p model.DeliveryPerson) error {
	return c.doJSON(ctx, http.MethodPut, "/api/delivery/update-delivery-person/"+url.PathEscape(userID), authOptional, p, nil)
}

// DeleteDeliveryPerson removes a delivery person.
func (c *Client) DeleteDeliveryPerson(ctx context.Context, userID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/delivery/delete-delivery-person/"+url.PathEscape(userID), authOptional, nil, nil)
}

// ListCoupons fetches every coupon.
func (c *Client) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	return getList[model.Coupon](ctx, c, "/api/coupons", authRequired, "data", "coupons")
}

// CreateCoupon creates a coupon.
func (c *Client) CreateCoupon(ctx context.Context, coupon model.Coupon) error {
	return c.doJSON(ctx, http.MethodPost, "/api/coupons", authRequired, coupon, nil)
}

// UpdateCoupon edits a coupon.
func (c *Client) UpdateCoupon(ctx context.Context, id string, coupon model.Coupon) error {
	return c.doJSON(ctx, http.MethodPut, "/api/coupons/"+url.PathEscape(id), authRequired, coupon, nil)
}

// DeleteCoupon removes a coupon.
func (c *Client) DeleteCoupon(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/coupons/"+url.PathEscape(id), authRequired, nil, nil)
}

// ListWarehouses fetches every warehouse.
func (c *Client) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	return getList[model.Warehouse](ctx, c, "/api/wareHouse", authNone, "data", "warehouses")
}

// CreateWarehouse creates a warehouse.
func (c *Client) CreateWarehouse(ctx context.Context, w model.Warehouse) error {
	return c.doJSON(ctx, http.MethodPost, "/api/wareHouse", authOptional, w, nil)
}

// UpdateWarehouse edits a warehouse.
func (c *Client) UpdateWarehouse(ctx context.Context, id string, w model.Warehouse) error {
	return c.doJSON(ctx, http.MethodPut, "/api/wareHouse/"+url.PathEscape(id), authOptional, w, nil)
}

// DeleteWarehouse removes a warehouse.
func (c *Client) DeleteWarehouse(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/wareHouse/"+url.PathEscape(id), authOptional, nil, nil)
}

// ListUsers fetches every app user.
func (c *Client) ListUsers(ctx context.Context) ([]model.AppUser, error) {
	return getList[model.AppUser](ctx, c, "/api/admin/users", authRequired, "users", "data")
}

// UpdateUser edits an app user.
func (c *Client) UpdateUser(ctx context.Context, id string, u model.AppUser) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/users/"+url.PathEscape(id), authRequired, u, nil)
}

// DeleteUser removes an app user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/admin/users/"+url.PathEscape(id), authRequired, nil, nil)
}
