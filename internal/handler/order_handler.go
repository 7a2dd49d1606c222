package handler

import (
	"net/http"
	"strconv"

	"agrive-admin/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles the order screens.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// List handles GET /api/orders?view=.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.List(r.Context(), r.URL.Query().Get("view"))
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rows, h.logger)
}

type acceptRequest struct {
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// Accept handles POST /api/orders/{orderId}/accept.
func (h *OrderHandler) Accept(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathValue(r, "orderId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req acceptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	row, err := h.service.Accept(r.Context(), orderID, req.DeliveryPersonID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, row, h.logger)
}

type statusRequest struct {
	Status           string `json:"status"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// UpdateStatus handles PUT /api/orders/{orderId}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathValue(r, "orderId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	row, err := h.service.UpdateStatus(r.Context(), orderID, req.Status, req.DeliveryPersonID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, row, h.logger)
}

// Invoice handles POST /api/orders/{orderId}/invoice and streams the PDF.
func (h *OrderHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathValue(r, "orderId")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	pdf, err := h.service.Invoice(r.Context(), orderID)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="invoice-`+orderID+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// DashboardHandler serves the dashboard counters.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Summary handles GET /api/dashboard. Unavailable sources are reported in
// the body; the response is always 200.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary := h.service.Summary(r.Context())
	if len(summary.Unavailable) > 0 {
		h.logger.Warn().Strs("unavailable", summary.Unavailable).Msg("partial dashboard")
	}
	writeJSON(w, http.StatusOK, summary, h.logger)
}

