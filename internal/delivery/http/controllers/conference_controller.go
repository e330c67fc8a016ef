package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "roomblock/internal/delivery/http/helpers"
	"roomblock/internal/domain"
)

// ConferenceController serves the public conference lookup endpoints.
type ConferenceController struct {
	Logger  *slog.Logger
	Service domain.ConferenceService
}

func NewConferenceController(logger *slog.Logger, svc domain.ConferenceService) *ConferenceController {
	return &ConferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary Look up a conference by passcode
// @Description Returns the conferences matching the filters[passcode][$eq] query parameter. The passcode is normalized (lowercased, stripped of characters outside a-z0-9) before lookup. An empty data array means no conference matches. Without the passcode filter the endpoint returns 400; the full list is admin-only.
// @Tags conferences
// @Produce json
// @Param filters[passcode][$eq] query string true "Registration passcode"
// @Success 200 {object} helpers.APIResponse "data contains zero or one conferences"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/conferences [get]
func (c *ConferenceController) List(w http.ResponseWriter, r *http.Request) {
	passcode := r.URL.Query().Get("filters[passcode][$eq]")
	if passcode == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "passcode filter is required")
		return
	}
	conf, err := c.Service.GetByPasscode(r.Context(), passcode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrNotFound):
			// An unknown or malformed passcode is not an error from the
			// caller's point of view, just an empty result set.
			h.WriteJSONSuccess(w, http.StatusOK, []*domain.Conference{})
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to look up conference")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, []*domain.Conference{conf})
}

// GetByID godoc
// @Summary Get a conference by ID
// @Description Returns a single conference by its identifier.
// @Tags conferences
// @Produce json
// @Param conferenceID path string true "Conference ID"
// @Success 200 {object} helpers.APIResponse "data contains the conference"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/conferences/{conferenceID} [get]
func (c *ConferenceController) GetByID(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.PathValue("conferenceID")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceID")
		return
	}
	conf, err := c.Service.GetByID(r.Context(), conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to get conference")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, conf)
}
