package orders

import (
	"sync"
	"time"

	"agrive-admin/internal/model"
)

// Board holds the order screen state: the rows of the last fetch, patched
// in place after successful accept and status updates.
type Board struct {
	mu     sync.RWMutex
	rows   []model.OrderRow
	index  map[string]int
	now    func() time.Time
	loaded bool
}

// NewBoard creates an empty board. A nil clock uses time.Now.
func NewBoard(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{
		index: make(map[string]int),
		now:   now,
	}
}

// Now returns the board's current time.
func (b *Board) Now() time.Time {
	return b.now()
}

// Replace installs a fresh fetch and returns the flattened rows.
func (b *Board) Replace(orders []model.Order) []model.OrderRow {
	rows := FlattenOrders(orders)
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		index[row.OrderID] = i
	}

	b.mu.Lock()
	b.rows = rows
	b.index = index
	b.loaded = true
	b.mu.Unlock()

	return cloneRows(rows)
}

// Loaded reports whether Replace has been called.
func (b *Board) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loaded
}

// View returns the rows of the named view.
func (b *Board) View(view string) []model.OrderRow {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Select(b.rows, view, b.now())
}

// Get returns the row with the given order id.
func (b *Board) Get(orderID string) (model.OrderRow, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i, ok := b.index[orderID]
	if !ok {
		return model.OrderRow{}, false
	}
	return b.rows[i], true
}

// Assign marks an order accepted by the given delivery person.
func (b *Board) Assign(orderID string, person model.AssignedPerson) (model.OrderRow, bool) {
	return b.patch(orderID, func(row *model.OrderRow) {
		row.Status = StatusAccepted
		row.DeliveryPersonID = person.ID
		if person.Name != "" {
			row.DeliveryPersonName = person.Name
		}
		if person.Phone != "" {
			row.DeliveryPersonPhone = person.Phone
		}
		row.Source.Status = StatusAccepted
		row.Source.DeliveryPerson = &person
	})
}

// SetStatus records a new status and the delivery person that moved it.
func (b *Board) SetStatus(orderID, status, deliveryPersonID string) (model.OrderRow, bool) {
	return b.patch(orderID, func(row *model.OrderRow) {
		row.Status = status
		row.Source.Status = status
		if deliveryPersonID != "" && deliveryPersonID != row.DeliveryPersonID {
			row.DeliveryPersonID = deliveryPersonID
			row.DeliveryPersonName = NotAvailable
			row.DeliveryPersonPhone = NotAvailable
		}
	})
}

func (b *Board) patch(orderID string, fn func(*model.OrderRow)) (model.OrderRow, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[orderID]
	if !ok {
		return model.OrderRow{}, false
	}
	fn(&b.rows[i])
	b.rows[i].Actions = ActionsFor(b.rows[i].Status)
	return b.rows[i], true
}

func cloneRows(rows []model.OrderRow) []model.OrderRow {
	out := make([]model.OrderRow, len(rows))
	copy(out, rows)
	return out
}
