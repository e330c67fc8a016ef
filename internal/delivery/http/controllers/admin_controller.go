package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "roomblock/internal/delivery/http/helpers"
	"roomblock/internal/domain"
)

// AdminController serves the staff dashboard endpoints. All routes are mounted
// behind RequireAuth.
type AdminController struct {
	Logger      *slog.Logger
	Orders      domain.OrderService
	Conferences domain.ConferenceService
	Stats       domain.StatsService
}

func NewAdminController(logger *slog.Logger, orders domain.OrderService, conferences domain.ConferenceService, stats domain.StatsService) *AdminController {
	return &AdminController{
		Logger:      logger,
		Orders:      orders,
		Conferences: conferences,
		Stats:       stats,
	}
}

// ListOrders godoc
// @Summary List submitted orders
// @Description Returns submitted orders, newest first, with pagination metadata.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains orders; meta contains pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/orders [get]
func (c *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	orders, total, err := c.Orders.ListOrders(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to list orders")
		return
	}
	h.WriteJSONList(w, http.StatusOK, orders, h.NewPaginationMeta(params.Page, params.PageSize, total))
}

// GetOrder godoc
// @Summary Get an order with its rooms and occupants
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param orderID path string true "Order ID"
// @Success 200 {object} helpers.APIResponse "data contains the order"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/orders/{orderID} [get]
func (c *AdminController) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := r.PathValue("orderID")
	if orderID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing orderID")
		return
	}
	order, err := c.Orders.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "order not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to get order")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, order)
}

// ListConferences godoc
// @Summary List all conferences
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains all conferences"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/conferences [get]
func (c *AdminController) ListConferences(w http.ResponseWriter, r *http.Request) {
	conferences, err := c.Conferences.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to list conferences")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, conferences)
}

// ConferenceStats godoc
// @Summary Booking volume per conference hotel
// @Description Returns order, room, and occupant counts grouped by conference hotel. Orders without a hotel selection are grouped under an empty hotel name.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains per-hotel stats"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/stats/conferences [get]
func (c *AdminController) ConferenceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Stats.ConferenceStats(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to compute stats")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}
