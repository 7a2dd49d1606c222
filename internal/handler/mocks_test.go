package handler

import (
	"context"
	"io"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/catalog"
	"agrive-admin/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req model.LoginRequest) (model.SessionStatus, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.SessionStatus), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockAuthService) Status() model.SessionStatus {
	return m.Called().Get(0).(model.SessionStatus)
}

// MockCatalogService is a mock implementation of CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) List(ctx context.Context, filter catalog.Filter, refresh bool) ([]model.VariantRow, error) {
	args := m.Called(ctx, filter, refresh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.VariantRow), args.Error(1)
}

func (m *MockCatalogService) Export(ctx context.Context, filter catalog.Filter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	if fn, ok := args.Get(0).(func(io.Writer) error); ok {
		return fn(w)
	}
	return args.Error(0)
}

func (m *MockCatalogService) Taxonomy() catalog.Taxonomy {
	return m.Called().Get(0).(catalog.Taxonomy)
}

func (m *MockCatalogService) Create(ctx context.Context, input model.ProductInput) (model.MessageResponse, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockCatalogService) UpdateVariant(ctx context.Context, productID string, index int, edit model.VariantEdit, image *model.FileUpload) (model.VariantRow, error) {
	args := m.Called(ctx, productID, index, edit, image)
	return args.Get(0).(model.VariantRow), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

// MockBulkService is a mock implementation of BulkService.
type MockBulkService struct {
	mock.Mock
}

func (m *MockBulkService) Upload(ctx context.Context, name string, data []byte) (model.BulkUploadResult, error) {
	args := m.Called(ctx, name, data)
	return args.Get(0).(model.BulkUploadResult), args.Error(1)
}

func (m *MockBulkService) UploadFromSource(ctx context.Context, source string) (model.BulkUploadResult, error) {
	args := m.Called(ctx, source)
	return args.Get(0).(model.BulkUploadResult), args.Error(1)
}

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, view string) ([]model.OrderRow, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRow), args.Error(1)
}

func (m *MockOrderService) Accept(ctx context.Context, orderID, deliveryPersonID string) (model.OrderRow, error) {
	args := m.Called(ctx, orderID, deliveryPersonID)
	return args.Get(0).(model.OrderRow), args.Error(1)
}

func (m *MockOrderService) UpdateStatus(ctx context.Context, orderID, status, deliveryPersonID string) (model.OrderRow, error) {
	args := m.Called(ctx, orderID, status, deliveryPersonID)
	return args.Get(0).(model.OrderRow), args.Error(1)
}

func (m *MockOrderService) Invoice(ctx context.Context, orderID string) ([]byte, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) model.DashboardSummary {
	return m.Called(ctx).Get(0).(model.DashboardSummary)
}

// MockCouponService is a mock implementation of CouponService.
type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) List(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockCouponService) Create(ctx context.Context, c model.Coupon) ([]model.Coupon, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockCouponService) Update(ctx context.Context, id string, c model.Coupon) ([]model.Coupon, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockCouponService) Delete(ctx context.Context, id string) ([]model.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

// MockDeliveryPersonService is a mock implementation of DeliveryPersonService.
type MockDeliveryPersonService struct {
	mock.Mock
}

func (m *MockDeliveryPersonService) List(ctx context.Context) ([]model.DeliveryPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) Create(ctx context.Context, p model.DeliveryPerson) ([]model.DeliveryPerson, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) Update(ctx context.Context, userID string, p model.DeliveryPerson) ([]model.DeliveryPerson, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonService) Delete(ctx context.Context, userID string) ([]model.DeliveryPerson, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryPerson), args.Error(1)
}

// MockWarehouseService is a mock implementation of WarehouseService.
type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) List(ctx context.Context) ([]model.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) Create(ctx context.Context, w model.Warehouse) ([]model.Warehouse, error) {
	args := m.Called(ctx, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) Update(ctx context.Context, id string, w model.Warehouse) ([]model.Warehouse, error) {
	args := m.Called(ctx, id, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *MockWarehouseService) Delete(ctx context.Context, id string) ([]model.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]model.AppUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppUser), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, id string, u model.AppUser) ([]model.AppUser, error) {
	args := m.Called(ctx, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppUser), args.Error(1)
}

func (m *MockUserService) Delete(ctx context.Context, id string) ([]model.AppUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppUser), args.Error(1)
}

// MockMediaService is a mock implementation of MediaService.
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) List(ctx context.Context, kind apiclient.MediaKind) ([]model.MediaImage, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) Upload(ctx context.Context, kind apiclient.MediaKind, images []model.FileUpload) ([]model.MediaImage, error) {
	args := m.Called(ctx, kind, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) Replace(ctx context.Context, kind apiclient.MediaKind, id string, image model.FileUpload) ([]model.MediaImage, error) {
	args := m.Called(ctx, kind, id, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, kind apiclient.MediaKind, id string) ([]model.MediaImage, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) ([]model.MediaImage, error) {
	args := m.Called(ctx, variantID, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaService) ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error {
	return m.Called(ctx, id, image).Error(0)
}

func (m *MockMediaService) DeleteProductImage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
