package service

import (
	"context"
	"fmt"
	"strings"

	"agrive-admin/internal/model"
	"agrive-admin/internal/orders"

	"github.com/rs/zerolog"
)

// orderService implements OrderService on top of an orders.Board.
type orderService struct {
	api     OrderAPI
	persons DeliveryPersonAPI
	board   *orders.Board
	logger  zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	api OrderAPI,
	persons DeliveryPersonAPI,
	board *orders.Board,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		api:     api,
		persons: persons,
		board:   board,
		logger:  logger.With().Str("service", "order").Logger(),
	}
}

// List refetches orders and returns the named view.
func (s *orderService) List(ctx context.Context, view string) ([]model.OrderRow, error) {
	view, err := orders.ParseView(view)
	if err != nil {
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.board.View(view), nil
}

func (s *orderService) reload(ctx context.Context) error {
	list, err := s.api.ListOrders(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch orders")
		return fmt.Errorf("failed to fetch orders: %w", err)
	}
	s.board.Replace(list)
	return nil
}

// row returns the board row, loading the board on first use.
func (s *orderService) row(ctx context.Context, orderID string) (model.OrderRow, error) {
	if !s.board.Loaded() {
		if err := s.reload(ctx); err != nil {
			return model.OrderRow{}, err
		}
	}
	row, ok := s.board.Get(orderID)
	if !ok {
		return model.OrderRow{}, model.ErrOrderNotFound
	}
	return row, nil
}

// Accept assigns a delivery person to a pending order.
func (s *orderService) Accept(ctx context.Context, orderID, deliveryPersonID string) (model.OrderRow, error) {
	deliveryPersonID = strings.TrimSpace(deliveryPersonID)
	if deliveryPersonID == "" {
		return model.OrderRow{}, model.Validation("deliveryPersonId is required")
	}

	row, err := s.row(ctx, orderID)
	if err != nil {
		return model.OrderRow{}, err
	}
	if !row.Actions.Accept {
		s.logger.Warn().
			Str("order_id", orderID).
			Str("status", row.Status).
			Msg("accept not allowed")
		return model.OrderRow{}, model.ErrActionNotAllowed
	}

	_, err = s.api.AcceptOrder(ctx, model.AcceptOrderRequest{
		OrderID:          orderID,
		DeliveryPersonID: deliveryPersonID,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to accept order")
		return model.OrderRow{}, err
	}

	person := s.lookupPerson(ctx, deliveryPersonID)
	updated, _ := s.board.Assign(orderID, person)

	s.logger.Info().
		Str("order_id", orderID).
		Str("delivery_person_id", deliveryPersonID).
		Msg("order accepted")
	return updated, nil
}

// UpdateStatus moves an order to a new status. Without an explicit
// delivery person the order's current assignee is used.
func (s *orderService) UpdateStatus(ctx context.Context, orderID, status, deliveryPersonID string) (model.OrderRow, error) {
	if !orders.IsValidStatus(status) {
		return model.OrderRow{}, model.Validation(fmt.Sprintf("invalid status %q", status))
	}

	row, err := s.row(ctx, orderID)
	if err != nil {
		return model.OrderRow{}, err
	}
	if !row.Actions.UpdateStatus {
		s.logger.Warn().
			Str("order_id", orderID).
			Str("status", row.Status).
			Msg("status update not allowed")
		return model.OrderRow{}, model.ErrActionNotAllowed
	}

	deliveryPersonID = strings.TrimSpace(deliveryPersonID)
	if deliveryPersonID == "" {
		deliveryPersonID = row.DeliveryPersonID
	}
	if deliveryPersonID == "" {
		return model.OrderRow{}, model.Validation("order has no delivery person assigned")
	}

	_, err = s.api.UpdateOrderStatus(ctx, model.UpdateStatusRequest{
		Status:           status,
		OrderID:          orderID,
		DeliveryPersonID: deliveryPersonID,
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", orderID).
			Str("status", status).
			Msg("failed to update order status")
		return model.OrderRow{}, err
	}

	updated, _ := s.board.SetStatus(orderID, status, deliveryPersonID)

	s.logger.Info().
		Str("order_id", orderID).
		Str("from", row.Status).
		Str("to", status).
		Msg("order status updated")
	return updated, nil
}

// Invoice renders the order as a PDF.
func (s *orderService) Invoice(ctx context.Context, orderID string) ([]byte, error) {
	row, err := s.row(ctx, orderID)
	if err != nil {
		return nil, err
	}

	pdf, err := s.api.GenerateInvoice(ctx, row.Source)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", orderID).Msg("failed to generate invoice")
		return nil, err
	}
	return pdf, nil
}

// lookupPerson resolves a delivery person's name and phone. Lookup
// failures only cost the display fields.
func (s *orderService) lookupPerson(ctx context.Context, id string) model.AssignedPerson {
	person := model.AssignedPerson{ID: id}
	if s.persons == nil {
		return person
	}

	list, err := s.persons.ListDeliveryPersons(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to resolve delivery person")
		return person
	}
	for _, p := range list {
		if p.UserID == id {
			person.Name = p.Name
			person.Phone = p.Phone
			break
		}
	}
	return person
}
