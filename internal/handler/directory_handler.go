package handler

import (
	"net/http"

	"agrive-admin/internal/model"
	"agrive-admin/internal/service"

	"github.com/rs/zerolog"
)

// DirectoryHandler handles delivery persons, coupons, warehouses and app
// users. Every write responds with the refreshed list.
type DirectoryHandler struct {
	persons    service.DeliveryPersonService
	coupons    service.CouponService
	warehouses service.WarehouseService
	users      service.UserService
	logger     zerolog.Logger
}

// NewDirectoryHandler creates a new directory handler.
func NewDirectoryHandler(
	persons service.DeliveryPersonService,
	coupons service.CouponService,
	warehouses service.WarehouseService,
	users service.UserService,
	logger zerolog.Logger,
) *DirectoryHandler {
	return &DirectoryHandler{
		persons:    persons,
		coupons:    coupons,
		warehouses: warehouses,
		users:      users,
		logger:     logger.With().Str("handler", "directory").Logger(),
	}
}

// respond writes list or the error.
func respond[T any](h *DirectoryHandler, w http.ResponseWriter, r *http.Request, status int, list []T, err error) {
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, status, list, h.logger)
}

// ListDeliveryPersons handles GET /api/delivery-persons.
func (h *DirectoryHandler) ListDeliveryPersons(w http.ResponseWriter, r *http.Request) {
	list, err := h.persons.List(r.Context())
	respond(h, w, r, http.StatusOK, list, err)
}

// CreateDeliveryPerson handles POST /api/delivery-persons.
func (h *DirectoryHandler) CreateDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	var p model.DeliveryPerson
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.persons.Create(r.Context(), p)
	respond(h, w, r, http.StatusCreated, list, err)
}

// UpdateDeliveryPerson handles PUT /api/delivery-persons/{id}.
func (h *DirectoryHandler) UpdateDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathValue(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	var p model.DeliveryPerson
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.persons.Update(r.Context(), id, p)
	respond(h, w, r, http.StatusOK, list, err)
}

// DeleteDeliveryPerson handles DELETE /api/delivery-persons/{id}.
func (h *DirectoryHandler) DeleteDeliveryPerson(w http.ResponseWriter, r *http.Request) {
	id, err := pathValue(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.persons.Delete(r.Context(), id)
	respond(h, w, r, http.StatusOK, list, err)
}

// ListCoupons handles GET /api/coupons.
func (h *DirectoryHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	list, err := h.coupons.List(r.Context())
	respond(h, w, r, http.StatusOK, list, err)
}

// CreateCoupon handles POST /api/coupons.
func (h *DirectoryHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var c model.Coupon
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.coupons.Create(r.Context(), c)
	respond(h, w, r, http.StatusCreated, list, err)
}

// UpdateCoupon handles PUT /api/coupons/{id}.
func (h *DirectoryHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	var c model.Coupon
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.coupons.Update(r.Context(), id, c)
	respond(h, w, r, http.StatusOK, list, err)
}

// DeleteCoupon handles DELETE /api/coupons/{id}.
func (h *DirectoryHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.coupons.Delete(r.Context(), id)
	respond(h, w, r, http.StatusOK, list, err)
}

// ListWarehouses handles GET /api/warehouses.
func (h *DirectoryHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	list, err := h.warehouses.List(r.Context())
	respond(h, w, r, http.StatusOK, list, err)
}

// CreateWarehouse handles POST /api/warehouses.
func (h *DirectoryHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var wh model.Warehouse
	if err := decodeJSON(r, &wh); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.warehouses.Create(r.Context(), wh)
	respond(h, w, r, http.StatusCreated, list, err)
}

// UpdateWarehouse handles PUT /api/warehouses/{id}.
func (h *DirectoryHandler) UpdateWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	var wh model.Warehouse
	if err := decodeJSON(r, &wh); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.warehouses.Update(r.Context(), id, wh)
	respond(h, w, r, http.StatusOK, list, err)
}

// DeleteWarehouse handles DELETE /api/warehouses/{id}.
func (h *DirectoryHandler) DeleteWarehouse(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.warehouses.Delete(r.Context(), id)
	respond(h, w, r, http.StatusOK, list, err)
}

// ListUsers handles GET /api/users.
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.users.List(r.Context())
	respond(h, w, r, http.StatusOK, list, err)
}

// UpdateUser handles PUT /api/users/{id}.
func (h *DirectoryHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathValue(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	var u model.AppUser
	if err := decodeJSON(r, &u); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.users.Update(r.Context(), id, u)
	respond(h, w, r, http.StatusOK, list, err)
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *DirectoryHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathValue(r, "id")
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	list, err := h.users.Delete(r.Context(), id)
	respond(h, w, r, http.StatusOK, list, err)
}
