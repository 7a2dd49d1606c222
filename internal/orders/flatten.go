package orders

import (
	"strings"
	"time"

	"agrive-admin/internal/model"

	"github.com/google/uuid"
)

// NotAvailable fills display fields the payload did not carry.
const NotAvailable = "N/A"

// DisplayLayout formats createdAt for the order tables.
const DisplayLayout = "02 Jan 2006, 03:04 PM"

var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlattenOrders maps every order to exactly one row, defaulting missing
// fields so the tables never render blanks.
func FlattenOrders(orders []model.Order) []model.OrderRow {
	rows := make([]model.OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, FlattenOrder(o))
	}
	return rows
}

// FlattenOrder maps a single order to a row.
func FlattenOrder(o model.Order) model.OrderRow {
	row := model.OrderRow{
		OrderID:             o.OrderID,
		Status:              orDefault(o.Status),
		Amount:              o.Amount.Float64(),
		UserID:              NotAvailable,
		UserName:            NotAvailable,
		UserPhoneNumber:     NotAvailable,
		State:               NotAvailable,
		Pincode:             NotAvailable,
		HouseDetails:        NotAvailable,
		RoadDetails:         NotAvailable,
		DeliveryPersonName:  NotAvailable,
		DeliveryPersonPhone: NotAvailable,
		CreatedAtFormatted:  NotAvailable,
		Items:               flattenItems(o.Items),
		Source:              o,
	}
	if row.OrderID == "" {
		row.OrderID = NotAvailable + "-" + uuid.NewString()
	}

	if a := o.Address; a != nil {
		row.UserID = orDefault(a.UserID)
		row.UserName = orDefault(a.FullName)
		row.UserPhoneNumber = orDefault(a.PhoneNumber)
		row.State = orDefault(a.State)
		row.Pincode = orDefault(a.Pincode)
		row.HouseDetails = orDefault(a.HouseDetails)
		row.RoadDetails = orDefault(a.RoadDetails)
	}

	if dp := o.DeliveryPerson; dp != nil {
		row.DeliveryPersonID = dp.ID
		row.DeliveryPersonName = orDefault(dp.Name)
		row.DeliveryPersonPhone = orDefault(dp.Phone)
	}

	if t, ok := ParseCreatedAt(o.CreatedAt); ok {
		ms := t.UnixMilli()
		row.CreatedAt = &ms
		row.CreatedAtFormatted = t.UTC().Format(DisplayLayout)
	}

	row.Actions = ActionsFor(row.Status)
	return row
}

// ParseCreatedAt parses the timestamp formats the API has been seen to emit.
func ParseCreatedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func flattenItems(items []model.OrderItem) []model.OrderRowItem {
	out := make([]model.OrderRowItem, 0, len(items))
	for _, it := range items {
		image := it.ImageURL
		if image == "" {
			image = it.Image
		}
		out = append(out, model.OrderRowItem{
			Name:     it.Name,
			Quantity: it.Quantity.Float64(),
			Unit:     it.Unit,
			Image:    image,
		})
	}
	return out
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}
