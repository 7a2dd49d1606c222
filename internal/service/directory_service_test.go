package service

import (
	"context"
	"errors"
	"testing"

	"agrive-admin/internal/apiclient"
	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliveryPersonService_Create(t *testing.T) {
	api := new(MockDeliveryPersonAPI)
	svc := NewDeliveryPersonService(api, zerolog.Nop())

	want := model.DeliveryPerson{Name: "Ravi", Phone: "9000000001", Password: "pw"}
	refreshed := []model.DeliveryPerson{{UserID: "DP-1", Name: "Ravi", Phone: "9000000001"}}
	api.On("CreateDeliveryPerson", mock.Anything, want).Return(nil)
	api.On("ListDeliveryPersons", mock.Anything).Return(refreshed, nil)

	got, err := svc.Create(context.Background(), model.DeliveryPerson{Name: " Ravi ", Phone: "9000000001 ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, refreshed, got)
	api.AssertExpectations(t)
}

func TestDeliveryPersonService_Validation(t *testing.T) {
	tests := []struct {
		name   string
		create bool
		person model.DeliveryPerson
		want   string
	}{
		{name: "missing name", create: true, person: model.DeliveryPerson{Phone: "9000000001", Password: "pw"}, want: "name is required"},
		{name: "missing phone", create: true, person: model.DeliveryPerson{Name: "A", Password: "pw"}, want: "phone is required"},
		{name: "short phone", create: true, person: model.DeliveryPerson{Name: "A", Phone: "12345", Password: "pw"}, want: "phone must be exactly 10 digits"},
		{name: "letters in phone", create: true, person: model.DeliveryPerson{Name: "A", Phone: "90000000ab", Password: "pw"}, want: "phone must be exactly 10 digits"},
		{name: "create without password", create: true, person: model.DeliveryPerson{Name: "A", Phone: "9000000001"}, want: "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockDeliveryPersonAPI)
			svc := NewDeliveryPersonService(api, zerolog.Nop())

			_, err := svc.Create(context.Background(), tt.person)

			assert.ErrorIs(t, err, model.ErrValidation)
			assert.EqualError(t, err, tt.want)
			api.AssertNotCalled(t, "CreateDeliveryPerson", mock.Anything, mock.Anything)
		})
	}
}

func TestDeliveryPersonService_UpdateWithoutPassword(t *testing.T) {
	api := new(MockDeliveryPersonAPI)
	svc := NewDeliveryPersonService(api, zerolog.Nop())

	api.On("UpdateDeliveryPerson", mock.Anything, "DP-1", model.DeliveryPerson{
		UserID: "DP-1", Name: "Ravi K", Phone: "9000000001",
	}).Return(nil)
	api.On("ListDeliveryPersons", mock.Anything).Return([]model.DeliveryPerson{}, nil)

	_, err := svc.Update(context.Background(), "DP-1", model.DeliveryPerson{Name: "Ravi K", Phone: "9000000001"})

	require.NoError(t, err)
	api.AssertExpectations(t)
}

func TestDeliveryPersonService_Delete_WriteErrorSkipsRefetch(t *testing.T) {
	api := new(MockDeliveryPersonAPI)
	svc := NewDeliveryPersonService(api, zerolog.Nop())

	notFound := &apiclient.APIError{StatusCode: 404, Message: "Delivery person not found"}
	api.On("DeleteDeliveryPerson", mock.Anything, "DP-9").Return(notFound)

	_, err := svc.Delete(context.Background(), "DP-9")

	assert.ErrorIs(t, err, notFound)
	api.AssertNotCalled(t, "ListDeliveryPersons", mock.Anything)
}

func TestCouponService_Create_Normalises(t *testing.T) {
	api := new(MockCouponAPI)
	svc := NewCouponService(api, zerolog.Nop())

	api.On("CreateCoupon", mock.Anything, model.Coupon{
		Code: "FRESH10", Discount: 10, IsPercentage: true, ExpiryDate: "2024-12-31",
	}).Return(nil)
	api.On("ListCoupons", mock.Anything).Return([]model.Coupon{{ID: "C1", Code: "FRESH10"}}, nil)

	got, err := svc.Create(context.Background(), model.Coupon{
		ID: "ignored", Code: " fresh10 ", Discount: 10, IsPercentage: true, ExpiryDate: "2024-12-31",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	api.AssertExpectations(t)
}

func TestCouponService_Validation(t *testing.T) {
	tests := []struct {
		name   string
		coupon model.Coupon
		want   string
	}{
		{name: "missing code", coupon: model.Coupon{Code: "  ", Discount: 5}, want: "code is required"},
		{name: "zero discount", coupon: model.Coupon{Code: "X"}, want: "discount must be greater than 0"},
		{name: "negative discount", coupon: model.Coupon{Code: "X", Discount: -5}, want: "discount must be greater than 0"},
		{name: "percentage over 100", coupon: model.Coupon{Code: "X", Discount: 120, IsPercentage: true}, want: "percentage discount cannot exceed 100"},
		{name: "bad expiry", coupon: model.Coupon{Code: "X", Discount: 5, ExpiryDate: "31/12/2024"}, want: `invalid expiryDate "31/12/2024": use YYYY-MM-DD`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockCouponAPI)
			svc := NewCouponService(api, zerolog.Nop())

			_, err := svc.Create(context.Background(), tt.coupon)

			assert.ErrorIs(t, err, model.ErrValidation)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestCouponService_FlatDiscountAbove100(t *testing.T) {
	api := new(MockCouponAPI)
	svc := NewCouponService(api, zerolog.Nop())
	api.On("UpdateCoupon", mock.Anything, "C1", mock.Anything).Return(nil)
	api.On("ListCoupons", mock.Anything).Return([]model.Coupon{}, nil)

	_, err := svc.Update(context.Background(), "C1", model.Coupon{
		Code: "FLAT150", Discount: 150, ExpiryDate: "2025-01-01T00:00:00Z",
	})

	assert.NoError(t, err)
}

func TestCouponService_RefetchFailure(t *testing.T) {
	api := new(MockCouponAPI)
	svc := NewCouponService(api, zerolog.Nop())
	api.On("DeleteCoupon", mock.Anything, "C1").Return(nil)
	api.On("ListCoupons", mock.Anything).Return(nil, apiclient.ErrUnavailable)

	_, err := svc.Delete(context.Background(), "C1")

	assert.ErrorIs(t, err, apiclient.ErrUnavailable)
	assert.Contains(t, err.Error(), "failed to refresh after delete")
}

func TestWarehouseService(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		api := new(MockWarehouseAPI)
		svc := NewWarehouseService(api, zerolog.Nop())
		api.On("CreateWarehouse", mock.Anything, model.Warehouse{
			Name: "Indore Central", Location: "Indore", Pincode: "452001",
		}).Return(nil)
		api.On("ListWarehouses", mock.Anything).Return([]model.Warehouse{{ID: "W1"}}, nil)

		got, err := svc.Create(context.Background(), model.Warehouse{
			Name: "Indore Central ", Location: " Indore", Pincode: "452001",
		})

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	tests := []struct {
		name      string
		warehouse model.Warehouse
		want      string
	}{
		{name: "missing name", warehouse: model.Warehouse{Location: "X", Pincode: "452001"}, want: "name is required"},
		{name: "missing location", warehouse: model.Warehouse{Name: "X", Pincode: "452001"}, want: "location is required"},
		{name: "short pincode", warehouse: model.Warehouse{Name: "X", Location: "Y", Pincode: "4520"}, want: "pincode must be exactly 6 digits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockWarehouseAPI)
			svc := NewWarehouseService(api, zerolog.Nop())

			_, err := svc.Update(context.Background(), "W1", tt.warehouse)

			assert.EqualError(t, err, tt.want)
			api.AssertNotCalled(t, "UpdateWarehouse", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserService(t *testing.T) {
	api := new(MockUserAPI)
	svc := NewUserService(api, zerolog.Nop())

	users := []model.AppUser{{ID: "U1", Name: "Asha"}}
	api.On("ListUsers", mock.Anything).Return(users, nil)
	api.On("UpdateUser", mock.Anything, "U1", model.AppUser{ID: "U1", Name: "Asha R"}).Return(nil)
	api.On("DeleteUser", mock.Anything, "U2").Return(errors.New("boom"))

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, got)

	_, err = svc.Update(context.Background(), "U1", model.AppUser{Name: "Asha R"})
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), "U2")
	require.Error(t, err)
}
