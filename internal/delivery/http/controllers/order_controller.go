package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	h "roomblock/internal/delivery/http/helpers"
	"roomblock/internal/domain"
)

// SubmitOrderRequest is the request body for POST /api/orders/submit. The
// draft travels under a "data" key.
type SubmitOrderRequest struct {
	Data *domain.OrderDraft `json:"data"`
}

// OrderController serves the public order submission endpoint.
type OrderController struct {
	Logger  *slog.Logger
	Service domain.OrderService
}

func NewOrderController(logger *slog.Logger, svc domain.OrderService) *OrderController {
	return &OrderController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Submit a room block reservation
// @Description Persists the accumulated reservation draft as a new order with its rooms and occupants, in submission order, and returns the order with its confirmation code. Submission is not idempotent: every call creates a new order.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body SubmitOrderRequest true "Reservation draft under a data key"
// @Success 200 {object} helpers.APIResponse "data contains the created order; message confirms submission"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/orders/submit [post]
func (c *OrderController) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		return
	}
	if req.Data == nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "Order data is required")
		return
	}
	order, err := c.Service.Submit(r.Context(), req.Data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "Order data is required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to submit order")
		return
	}
	h.WriteJSONSuccessWithMessage(w, http.StatusOK, order, "Order submitted successfully")
}
