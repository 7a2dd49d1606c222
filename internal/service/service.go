package service

import (
	"context"
	"io"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/catalog"
	"agrive-admin/internal/model"
)

// Upstream data sources. *apiclient.Client satisfies all of them.

// AuthAPI exchanges admin credentials for a token.
type AuthAPI interface {
	Login(ctx context.Context, creds model.LoginRequest) (string, error)
}

// ProductAPI reads and writes catalog products.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error)
	UpdateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error)
	UpdateProductWithImage(ctx context.Context, p model.Product, image model.FileUpload) (model.MessageResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	BulkUploadProducts(ctx context.Context, sheet model.FileUpload) (model.BulkUploadResult, error)
}

// OrderAPI reads orders and drives them through the status pipeline.
type OrderAPI interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	AcceptOrder(ctx context.Context, req model.AcceptOrderRequest) (model.MessageResponse, error)
	UpdateOrderStatus(ctx context.Context, req model.UpdateStatusRequest) (model.MessageResponse, error)
	GenerateInvoice(ctx context.Context, order model.Order) ([]byte, error)
}

// DeliveryPersonAPI manages delivery persons.
type DeliveryPersonAPI interface {
	ListDeliveryPersons(ctx context.Context) ([]model.DeliveryPerson, error)
	CreateDeliveryPerson(ctx context.Context, p model.DeliveryPerson) error
	UpdateDeliveryPerson(ctx context.Context, userID string, p model.DeliveryPerson) error
	DeleteDeliveryPerson(ctx context.Context, userID string) error
}

// CouponAPI manages coupons.
type CouponAPI interface {
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, c model.Coupon) error
	UpdateCoupon(ctx context.Context, id string, c model.Coupon) error
	DeleteCoupon(ctx context.Context, id string) error
}

// WarehouseAPI manages warehouses.
type WarehouseAPI interface {
	ListWarehouses(ctx context.Context) ([]model.Warehouse, error)
	CreateWarehouse(ctx context.Context, w model.Warehouse) error
	UpdateWarehouse(ctx context.Context, id string, w model.Warehouse) error
	DeleteWarehouse(ctx context.Context, id string) error
}

// UserAPI manages app users.
type UserAPI interface {
	ListUsers(ctx context.Context) ([]model.AppUser, error)
	UpdateUser(ctx context.Context, id string, u model.AppUser) error
	DeleteUser(ctx context.Context, id string) error
}

// MediaAPI manages banners, deals and product galleries.
type MediaAPI interface {
	ListMedia(ctx context.Context, kind apiclient.MediaKind) ([]model.MediaImage, error)
	UploadMedia(ctx context.Context, kind apiclient.MediaKind, images []model.FileUpload) error
	ReplaceMedia(ctx context.Context, kind apiclient.MediaKind, id string, image model.FileUpload) error
	DeleteMedia(ctx context.Context, kind apiclient.MediaKind, id string) error
	ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error)
	UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) error
	ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error
	DeleteProductImage(ctx context.Context, id string) error
}

// SessionStore holds the admin token.
type SessionStore interface {
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Status() model.SessionStatus
}

// Services.

// AuthService defines operations for the admin session.
type AuthService interface {
	// Login authenticates with the Agrive API and stores the token.
	Login(ctx context.Context, req model.LoginRequest) (model.SessionStatus, error)

	// Logout forgets the stored token.
	Logout(ctx context.Context) error

	// Status reports the session state.
	Status() model.SessionStatus
}

// CatalogService defines operations for the catalog screen.
type CatalogService interface {
	// List returns the filtered variant rows. refresh refetches products
	// first; otherwise the last fetch is reused when there is one.
	List(ctx context.Context, filter catalog.Filter, refresh bool) ([]model.VariantRow, error)

	// Export writes the filtered rows as an xlsx workbook.
	Export(ctx context.Context, filter catalog.Filter, w io.Writer) error

	// Taxonomy returns categories, subcategories and units.
	Taxonomy() catalog.Taxonomy

	// Create creates a product, deriving every variant price.
	Create(ctx context.Context, input model.ProductInput) (model.MessageResponse, error)

	// UpdateVariant edits one variant and its parent product fields.
	UpdateVariant(ctx context.Context, productID string, index int, edit model.VariantEdit, image *model.FileUpload) (model.VariantRow, error)

	// Delete deletes a product and drops its rows.
	Delete(ctx context.Context, productID string) error
}

// BulkService defines operations for bulk product import.
type BulkService interface {
	// Upload imports an uploaded sheet.
	Upload(ctx context.Context, name string, data []byte) (model.BulkUploadResult, error)

	// UploadFromSource imports a sheet from the configured sheet store.
	UploadFromSource(ctx context.Context, source string) (model.BulkUploadResult, error)
}

// OrderService defines operations for the order screens.
type OrderService interface {
	// List refetches orders and returns the rows of the named view.
	List(ctx context.Context, view string) ([]model.OrderRow, error)

	// Accept assigns a delivery person to a pending order.
	Accept(ctx context.Context, orderID, deliveryPersonID string) (model.OrderRow, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, orderID, status, deliveryPersonID string) (model.OrderRow, error)

	// Invoice renders an order as a PDF.
	Invoice(ctx context.Context, orderID string) ([]byte, error)
}

// DashboardService computes the dashboard counters.
type DashboardService interface {
	Summary(ctx context.Context) model.DashboardSummary
}

// DeliveryPersonService defines delivery person management.
type DeliveryPersonService interface {
	List(ctx context.Context) ([]model.DeliveryPerson, error)
	Create(ctx context.Context, p model.DeliveryPerson) ([]model.DeliveryPerson, error)
	Update(ctx context.Context, userID string, p model.DeliveryPerson) ([]model.DeliveryPerson, error)
	Delete(ctx context.Context, userID string) ([]model.DeliveryPerson, error)
}

// CouponService defines coupon management.
type CouponService interface {
	List(ctx context.Context) ([]model.Coupon, error)
	Create(ctx context.Context, c model.Coupon) ([]model.Coupon, error)
	Update(ctx context.Context, id string, c model.Coupon) ([]model.Coupon, error)
	Delete(ctx context.Context, id string) ([]model.Coupon, error)
}

// WarehouseService defines warehouse management.
type WarehouseService interface {
	List(ctx context.Context) ([]model.Warehouse, error)
	Create(ctx context.Context, w model.Warehouse) ([]model.Warehouse, error)
	Update(ctx context.Context, id string, w model.Warehouse) ([]model.Warehouse, error)
	Delete(ctx context.Context, id string) ([]model.Warehouse, error)
}

// UserService defines app user management.
type UserService interface {
	List(ctx context.Context) ([]model.AppUser, error)
	Update(ctx context.Context, id string, u model.AppUser) ([]model.AppUser, error)
	Delete(ctx context.Context, id string) ([]model.AppUser, error)
}

// MediaService defines banner, deal and product gallery management.
type MediaService interface {
	List(ctx context.Context, kind apiclient.MediaKind) ([]model.MediaImage, error)
	Upload(ctx context.Context, kind apiclient.MediaKind, images []model.FileUpload) ([]model.MediaImage, error)
	Replace(ctx context.Context, kind apiclient.MediaKind, id string, image model.FileUpload) ([]model.MediaImage, error)
	Delete(ctx context.Context, kind apiclient.MediaKind, id string) ([]model.MediaImage, error)

	ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error)
	UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) ([]model.MediaImage, error)
	ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error
	DeleteProductImage(ctx context.Context, id string) error
}
