package service

import (
	"context"
	"fmt"

	"agrive-admin/internal/model"

	"github.com/rs/zerolog"
)

// mutateAndList runs a write and returns the refetched list. The write
// error wins; a failed refetch after a successful write is reported as is.
func mutateAndList[T any](
	ctx context.Context,
	logger zerolog.Logger,
	action string,
	write func() error,
	list func(context.Context) ([]T, error),
) ([]T, error) {
	if err := write(); err != nil {
		logger.Error().Err(err).Str("action", action).Msg("write failed")
		return nil, err
	}

	items, err := list(ctx)
	if err != nil {
		logger.Error().Err(err).Str("action", action).Msg("refetch after write failed")
		return nil, fmt.Errorf("failed to refresh after %s: %w", action, err)
	}

	logger.Info().Str("action", action).Int("count", len(items)).Msg("write completed")
	return items, nil
}

// deliveryPersonService implements DeliveryPersonService.
type deliveryPersonService struct {
	api    DeliveryPersonAPI
	logger zerolog.Logger
}

// NewDeliveryPersonService creates a new delivery person service.
func NewDeliveryPersonService(api DeliveryPersonAPI, logger zerolog.Logger) DeliveryPersonService {
	return &deliveryPersonService{
		api:    api,
		logger: logger.With().Str("service", "delivery-person").Logger(),
	}
}

func (s *deliveryPersonService) List(ctx context.Context) ([]model.DeliveryPerson, error) {
	return s.api.ListDeliveryPersons(ctx)
}

func (s *deliveryPersonService) Create(ctx context.Context, p model.DeliveryPerson) ([]model.DeliveryPerson, error) {
	p, err := normalizeDeliveryPerson(p, true)
	if err != nil {
		return nil, err
	}
	return mutateAndList(ctx, s.logger, "create", func() error {
		return s.api.CreateDeliveryPerson(ctx, p)
	}, s.api.ListDeliveryPersons)
}

func (s *deliveryPersonService) Update(ctx context.Context, userID string, p model.DeliveryPerson) ([]model.DeliveryPerson, error) {
	p, err := normalizeDeliveryPerson(p, false)
	if err != nil {
		return nil, err
	}
	p.UserID = userID
	return mutateAndList(ctx, s.logger, "update", func() error {
		return s.api.UpdateDeliveryPerson(ctx, userID, p)
	}, s.api.ListDeliveryPersons)
}

func (s *deliveryPersonService) Delete(ctx context.Context, userID string) ([]model.DeliveryPerson, error) {
	return mutateAndList(ctx, s.logger, "delete", func() error {
		return s.api.DeleteDeliveryPerson(ctx, userID)
	}, s.api.ListDeliveryPersons)
}

// couponService implements CouponService.
type couponService struct {
	api    CouponAPI
	logger zerolog.Logger
}

// NewCouponService creates a new coupon service.
func NewCouponService(api CouponAPI, logger zerolog.Logger) CouponService {
	return &couponService{
		api:    api,
		logger: logger.With().Str("service", "coupon").Logger(),
	}
}

func (s *couponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.api.ListCoupons(ctx)
}

func (s *couponService) Create(ctx context.Context, c model.Coupon) ([]model.Coupon, error) {
	c, err := normalizeCoupon(c)
	if err != nil {
		return nil, err
	}
	c.ID = ""
	return mutateAndList(ctx, s.logger, "create", func() error {
		return s.api.CreateCoupon(ctx, c)
	}, s.api.ListCoupons)
}

func (s *couponService) Update(ctx context.Context, id string, c model.Coupon) ([]model.Coupon, error) {
	c, err := normalizeCoupon(c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return mutateAndList(ctx, s.logger, "update", func() error {
		return s.api.UpdateCoupon(ctx, id, c)
	}, s.api.ListCoupons)
}

func (s *couponService) Delete(ctx context.Context, id string) ([]model.Coupon, error) {
	return mutateAndList(ctx, s.logger, "delete", func() error {
		return s.api.DeleteCoupon(ctx, id)
	}, s.api.ListCoupons)
}

// warehouseService implements WarehouseService.
type warehouseService struct {
	api    WarehouseAPI
	logger zerolog.Logger
}

// NewWarehouseService creates a new warehouse service.
func NewWarehouseService(api WarehouseAPI, logger zerolog.Logger) WarehouseService {
	return &warehouseService{
		api:    api,
		logger: logger.With().Str("service", "warehouse").Logger(),
	}
}

func (s *warehouseService) List(ctx context.Context) ([]model.Warehouse, error) {
	return s.api.ListWarehouses(ctx)
}

func (s *warehouseService) Create(ctx context.Context, w model.Warehouse) ([]model.Warehouse, error) {
	w, err := normalizeWarehouse(w)
	if err != nil {
		return nil, err
	}
	w.ID = ""
	return mutateAndList(ctx, s.logger, "create", func() error {
		return s.api.CreateWarehouse(ctx, w)
	}, s.api.ListWarehouses)
}

func (s *warehouseService) Update(ctx context.Context, id string, w model.Warehouse) ([]model.Warehouse, error) {
	w, err := normalizeWarehouse(w)
	if err != nil {
		return nil, err
	}
	w.ID = id
	return mutateAndList(ctx, s.logger, "update", func() error {
		return s.api.UpdateWarehouse(ctx, id, w)
	}, s.api.ListWarehouses)
}

func (s *warehouseService) Delete(ctx context.Context, id string) ([]model.Warehouse, error) {
	return mutateAndList(ctx, s.logger, "delete", func() error {
		return s.api.DeleteWarehouse(ctx, id)
	}, s.api.ListWarehouses)
}

// userService implements UserService.
type userService struct {
	api    UserAPI
	logger zerolog.Logger
}

// NewUserService creates a new app user service.
func NewUserService(api UserAPI, logger zerolog.Logger) UserService {
	return &userService{
		api:    api,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

func (s *userService) List(ctx context.Context) ([]model.AppUser, error) {
	return s.api.ListUsers(ctx)
}

func (s *userService) Update(ctx context.Context, id string, u model.AppUser) ([]model.AppUser, error) {
	u.ID = id
	return mutateAndList(ctx, s.logger, "update", func() error {
		return s.api.UpdateUser(ctx, id, u)
	}, s.api.ListUsers)
}

func (s *userService) Delete(ctx context.Context, id string) ([]model.AppUser, error) {
	return mutateAndList(ctx, s.logger, "delete", func() error {
		return s.api.DeleteUser(ctx, id)
	}, s.api.ListUsers)
}
