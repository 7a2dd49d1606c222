// Package orders flattens delivery orders into table rows and gates the
// actions an admin may take on each of them.
package orders

import "agrive-admin/internal/model"

// Order statuses, in pipeline order. The server owns transitions.
const (
	StatusPending        = "pending"
	StatusAccepted       = "accepted"
	StatusShipped        = "shipped"
	StatusOutForDelivery = "out for delivery"
	StatusDelivered      = "delivered"
)

// Statuses is the full status enum in pipeline order.
var Statuses = []string{
	StatusPending,
	StatusAccepted,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

// IsValidStatus reports whether s is one of Statuses.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if status == s {
			return true
		}
	}
	return false
}

// ActionsFor returns the controls offered for an order in the given status.
// Accept is offered only while pending; UpdateStatus until delivered.
func ActionsFor(status string) model.OrderActions {
	return model.OrderActions{
		Accept:       status == StatusPending,
		UpdateStatus: status != StatusDelivered,
	}
}
