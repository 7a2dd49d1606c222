package service

import (
	"context"
	"sort"
	"sync"

	"agrive-admin/internal/catalog"
	"agrive-admin/internal/model"
	"agrive-admin/internal/orders"

	"github.com/rs/zerolog"
)

// Dashboard data sources, as reported in DashboardSummary.Unavailable.
const (
	SourceProducts        = "products"
	SourceUsers           = "users"
	SourceOrders          = "orders"
	SourceDeliveryPersons = "deliveryPersons"
	SourceCoupons         = "coupons"
	SourceWarehouses      = "warehouses"
)

// DashboardSources groups the APIs the dashboard reads from.
type DashboardSources struct {
	Products        ProductAPI
	Users           UserAPI
	Orders          OrderAPI
	DeliveryPersons DeliveryPersonAPI
	Coupons         CouponAPI
	Warehouses      WarehouseAPI
}

// dashboardService implements DashboardService.
type dashboardService struct {
	src    DashboardSources
	board  *orders.Board
	logger zerolog.Logger
}

// NewDashboardService creates a new dashboard service. board supplies the
// clock used for "today".
func NewDashboardService(src DashboardSources, board *orders.Board, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		src:    src,
		board:  board,
		logger: logger.With().Str("service", "dashboard").Logger(),
	}
}

// Summary fetches every source concurrently. A failed source leaves its
// counters at zero and is listed in Unavailable.
func (s *dashboardService) Summary(ctx context.Context) model.DashboardSummary {
	var (
		summary model.DashboardSummary
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	run := func(source string, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fetch(); err != nil {
				s.logger.Error().Err(err).Str("source", source).Msg("dashboard fetch failed")
				mu.Lock()
				summary.Unavailable = append(summary.Unavailable, source)
				mu.Unlock()
			}
		}()
	}

	run(SourceProducts, func() error {
		products, err := s.src.Products.ListProducts(ctx)
		if err != nil {
			return err
		}
		rows := catalog.FlattenProducts(products, "")
		outOfStock := 0
		for _, row := range rows {
			if row.OutOfStock {
				outOfStock++
			}
		}
		mu.Lock()
		summary.TotalProducts = len(products)
		summary.TotalVariants = len(rows)
		summary.OutOfStock = outOfStock
		mu.Unlock()
		return nil
	})

	run(SourceUsers, func() error {
		users, err := s.src.Users.ListUsers(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		summary.AppUsers = len(users)
		mu.Unlock()
		return nil
	})

	run(SourceOrders, func() error {
		list, err := s.src.Orders.ListOrders(ctx)
		if err != nil {
			return err
		}
		counts := orders.Count(orders.FlattenOrders(list), s.board.Now())
		mu.Lock()
		summary.TotalOrders = counts.Total
		summary.TodaysOrders = counts.Today
		summary.PendingOrders = counts.Pending
		summary.DeliveredOrders = counts.Delivered
		summary.TodayDelivered = counts.TodayDelivered
		mu.Unlock()
		return nil
	})

	run(SourceDeliveryPersons, func() error {
		persons, err := s.src.DeliveryPersons.ListDeliveryPersons(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		summary.DeliveryPersons = len(persons)
		mu.Unlock()
		return nil
	})

	run(SourceCoupons, func() error {
		coupons, err := s.src.Coupons.ListCoupons(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		summary.Coupons = len(coupons)
		mu.Unlock()
		return nil
	})

	run(SourceWarehouses, func() error {
		warehouses, err := s.src.Warehouses.ListWarehouses(ctx)
		if err != nil {
			return err
		}
		mu.Lock()
		summary.Warehouses = len(warehouses)
		mu.Unlock()
		return nil
	})

	wg.Wait()

	if summary.Unavailable == nil {
		summary.Unavailable = []string{}
	}
	sort.Strings(summary.Unavailable)

	s.logger.Debug().
		Int("orders", summary.TotalOrders).
		Int("products", summary.TotalProducts).
		Strs("unavailable", summary.Unavailable).
		Msg("dashboard summary computed")
	return summary
}
