package service

import (
	"context"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/bulk"
	"agrive-admin/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockAuthAPI is a mock implementation of AuthAPI.
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Login(ctx context.Context, creds model.LoginRequest) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Login(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSessionStore) Status() model.SessionStatus {
	args := m.Called()
	return args.Get(0).(model.SessionStatus)
}

// MockProductAPI is a mock implementation of ProductAPI.
type MockProductAPI struct {
	mock.Mock
}

func (m *MockProductAPI) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductAPI) CreateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockProductAPI) UpdateProduct(ctx context.Context, p model.Product) (model.MessageResponse, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockProductAPI) UpdateProductWithImage(ctx context.Context, p model.Product, image model.FileUpload) (model.MessageResponse, error) {
	args := m.Called(ctx, p, image)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockProductAPI) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductAPI) BulkUploadProducts(ctx context.Context, sheet model.FileUpload) (model.BulkUploadResult, error) {
	args := m.Called(ctx, sheet)
	return args.Get(0).(model.BulkUploadResult), args.Error(1)
}

// MockOrderAPI is a mock implementation of OrderAPI.
type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderAPI) AcceptOrder(ctx context.Context, req model.AcceptOrderRequest) (model.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockOrderAPI) UpdateOrderStatus(ctx context.Context, req model.UpdateStatusRequest) (model.MessageResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.MessageResponse), args.Error(1)
}

func (m *MockOrderAPI) GenerateInvoice(ctx context.Context, order model.Order) ([]byte, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockDeliveryPersonAPI is a mock implementation of DeliveryPersonAPI.
type MockDeliveryPersonAPI struct {
	mock.Mock
}

func (m *MockDeliveryPersonAPI) ListDeliveryPersons(ctx context.Context) ([]model.DeliveryPerson, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DeliveryPerson), args.Error(1)
}

func (m *MockDeliveryPersonAPI) CreateDeliveryPerson(ctx context.Context, p model.DeliveryPerson) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockDeliveryPersonAPI) UpdateDeliveryPerson(ctx context.Context, userID string, p model.DeliveryPerson) error {
	return m.Called(ctx, userID, p).Error(0)
}

func (m *MockDeliveryPersonAPI) DeleteDeliveryPerson(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

// MockCouponAPI is a mock implementation of CouponAPI.
type MockCouponAPI struct {
	mock.Mock
}

func (m *MockCouponAPI) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Coupon), args.Error(1)
}

func (m *MockCouponAPI) CreateCoupon(ctx context.Context, c model.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCouponAPI) UpdateCoupon(ctx context.Context, id string, c model.Coupon) error {
	return m.Called(ctx, id, c).Error(0)
}

func (m *MockCouponAPI) DeleteCoupon(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockWarehouseAPI is a mock implementation of WarehouseAPI.
type MockWarehouseAPI struct {
	mock.Mock
}

func (m *MockWarehouseAPI) ListWarehouses(ctx context.Context) ([]model.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Warehouse), args.Error(1)
}

func (m *MockWarehouseAPI) CreateWarehouse(ctx context.Context, w model.Warehouse) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWarehouseAPI) UpdateWarehouse(ctx context.Context, id string, w model.Warehouse) error {
	return m.Called(ctx, id, w).Error(0)
}

func (m *MockWarehouseAPI) DeleteWarehouse(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserAPI is a mock implementation of UserAPI.
type MockUserAPI struct {
	mock.Mock
}

func (m *MockUserAPI) ListUsers(ctx context.Context) ([]model.AppUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AppUser), args.Error(1)
}

func (m *MockUserAPI) UpdateUser(ctx context.Context, id string, u model.AppUser) error {
	return m.Called(ctx, id, u).Error(0)
}

func (m *MockUserAPI) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockMediaAPI is a mock implementation of MediaAPI.
type MockMediaAPI struct {
	mock.Mock
}

func (m *MockMediaAPI) ListMedia(ctx context.Context, kind apiclient.MediaKind) ([]model.MediaImage, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaAPI) UploadMedia(ctx context.Context, kind apiclient.MediaKind, images []model.FileUpload) error {
	return m.Called(ctx, kind, images).Error(0)
}

func (m *MockMediaAPI) ReplaceMedia(ctx context.Context, kind apiclient.MediaKind, id string, image model.FileUpload) error {
	return m.Called(ctx, kind, id, image).Error(0)
}

func (m *MockMediaAPI) DeleteMedia(ctx context.Context, kind apiclient.MediaKind, id string) error {
	return m.Called(ctx, kind, id).Error(0)
}

func (m *MockMediaAPI) ListProductImages(ctx context.Context, variantID string) ([]model.MediaImage, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MediaImage), args.Error(1)
}

func (m *MockMediaAPI) UploadProductImages(ctx context.Context, variantID string, images []model.FileUpload) error {
	return m.Called(ctx, variantID, images).Error(0)
}

func (m *MockMediaAPI) ReplaceProductImage(ctx context.Context, id string, image model.FileUpload) error {
	return m.Called(ctx, id, image).Error(0)
}

func (m *MockMediaAPI) DeleteProductImage(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockLoader is a mock implementation of bulk.Loader.
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, name string) (*bulk.Sheet, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulk.Sheet), args.Error(1)
}
