package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "roomblock/internal/delivery/http/helpers"
	"roomblock/internal/domain"
)

// HotelController serves the public conference-hotel endpoints.
type HotelController struct {
	Logger  *slog.Logger
	Service domain.HotelService
}

func NewHotelController(logger *slog.Logger, svc domain.HotelService) *HotelController {
	return &HotelController{
		Logger:  logger,
		Service: svc,
	}
}

// parseBoolFilter reads a filters[...][$eq] boolean query value. Anything other
// than "true" or "false" leaves the filter unset.
func parseBoolFilter(r *http.Request, key string) *bool {
	switch r.URL.Query().Get(key) {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}

// List godoc
// @Summary List hotel offerings for a conference
// @Description Returns the hotels offered for the conference given in filters[conference][$eq], ordered by display priority. Optional filters[hasBusParking][$eq] and filters[hasTransitToVenue][$eq] narrow the result by transportation needs.
// @Tags conference-hotels
// @Produce json
// @Param filters[conference][$eq] query string true "Conference ID"
// @Param filters[hasBusParking][$eq] query bool false "Only hotels with bus parking"
// @Param filters[hasTransitToVenue][$eq] query bool false "Only hotels with transit to the venue"
// @Success 200 {object} helpers.APIResponse "data contains the matching hotel offerings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/conference-hotels [get]
func (c *HotelController) List(w http.ResponseWriter, r *http.Request) {
	conferenceID := r.URL.Query().Get("filters[conference][$eq]")
	if conferenceID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "conference filter is required")
		return
	}
	filters := domain.HotelFilters{
		HasBusParking:     parseBoolFilter(r, "filters[hasBusParking][$eq]"),
		HasTransitToVenue: parseBoolFilter(r, "filters[hasTransitToVenue][$eq]"),
	}
	hotels, err := c.Service.ListForConference(r.Context(), conferenceID, filters)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid conference filter")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to list conference hotels")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, hotels)
}

// GetByID godoc
// @Summary Get a conference-hotel offering by ID
// @Tags conference-hotels
// @Produce json
// @Param conferenceHotelID path string true "Conference hotel ID"
// @Success 200 {object} helpers.APIResponse "data contains the hotel offering"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/conference-hotels/{conferenceHotelID} [get]
func (c *HotelController) GetByID(w http.ResponseWriter, r *http.Request) {
	conferenceHotelID := r.PathValue("conferenceHotelID")
	if conferenceHotelID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing conferenceHotelID")
		return
	}
	hotel, err := c.Service.GetByID(r.Context(), conferenceHotelID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "conference hotel not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "Failed to get conference hotel")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, hotel)
}
