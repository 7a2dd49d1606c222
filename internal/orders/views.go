package orders

import (
	"time"

	"agrive-admin/internal/model"
)

// Order views.
const (
	ViewAll            = "all"
	ViewPending        = "pending"
	ViewToday          = "today"
	ViewDelivered      = "delivered"
	ViewTodayDelivered = "todayDelivered"
)

// ParseView normalises a view name. An empty name selects ViewAll.
func ParseView(s string) (string, error) {
	switch s {
	case "":
		return ViewAll, nil
	case ViewAll, ViewPending, ViewToday, ViewDelivered, ViewTodayDelivered:
		return s, nil
	default:
		return "", model.Validation("unknown order view: " + s)
	}
}

// Select returns the rows of the named view. now decides what "today" is.
func Select(rows []model.OrderRow, view string, now time.Time) []model.OrderRow {
	out := make([]model.OrderRow, 0, len(rows))
	for _, row := range rows {
		if inView(row, view, now) {
			out = append(out, row)
		}
	}
	return out
}

func inView(row model.OrderRow, view string, now time.Time) bool {
	switch view {
	case ViewPending:
		return row.Status == StatusPending
	case ViewToday:
		return IsToday(row, now)
	case ViewDelivered:
		return row.Status == StatusDelivered
	case ViewTodayDelivered:
		return row.Status == StatusDelivered && IsToday(row, now)
	default:
		return true
	}
}

// IsToday reports whether the row was created on now's UTC calendar day.
func IsToday(row model.OrderRow, now time.Time) bool {
	if row.CreatedAt == nil {
		return false
	}
	created := time.UnixMilli(*row.CreatedAt).UTC()
	return sameDay(created, now.UTC())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Counts are the order partitions shown on the dashboard.
type Counts struct {
	Total          int
	Today          int
	Pending        int
	Delivered      int
	TodayDelivered int
}

// Count partitions rows in a single pass.
func Count(rows []model.OrderRow, now time.Time) Counts {
	c := Counts{Total: len(rows)}
	for _, row := range rows {
		today := IsToday(row, now)
		if today {
			c.Today++
		}
		switch row.Status {
		case StatusPending:
			c.Pending++
		case StatusDelivered:
			c.Delivered++
			if today {
				c.TodayDelivered++
			}
		}
	}
	return c
}
