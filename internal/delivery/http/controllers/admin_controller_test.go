package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roomblock/internal/delivery/http/helpers"
	"roomblock/internal/domain"
)

type mockStatsService struct {
	stats []*domain.ConferenceHotelStats
	err   error
}

func (m *mockStatsService) ConferenceStats(ctx context.Context) ([]*domain.ConferenceHotelStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func TestAdminController_ListOrders_Pagination(t *testing.T) {
	orders := &mockOrderService{order: &domain.Order{ID: "o1", Confirmation: "A1B2C3D4"}}
	ctrl := NewAdminController(discardLogger(), orders, &mockConferenceService{}, &mockStatsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders?page=1&page_size=10", nil)
	w := httptest.NewRecorder()

	ctrl.ListOrders(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Meta == nil {
		t.Fatal("expected pagination meta")
	}
	if resp.Meta.Page != 1 || resp.Meta.PageSize != 10 || resp.Meta.Total != 1 {
		t.Fatalf("unexpected meta: %+v", resp.Meta)
	}
}

func TestAdminController_GetOrder(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantCode   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"not found", domain.ErrNotFound, http.StatusNotFound, helpers.ErrCodeNotFound},
		{"internal error", errors.New("db down"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &mockOrderService{order: &domain.Order{ID: "o1"}, err: tt.svcErr}
			ctrl := NewAdminController(discardLogger(), orders, &mockConferenceService{}, &mockStatsService{})

			req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/o1", nil)
			req.SetPathValue("orderID", "o1")
			w := httptest.NewRecorder()

			ctrl.GetOrder(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantCode != "" {
				var resp helpers.APIResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Error == nil || resp.Error.Code != tt.wantCode {
					t.Fatalf("unexpected error body: %+v", resp.Error)
				}
			}
		})
	}
}

func TestAdminController_ConferenceStats(t *testing.T) {
	stats := &mockStatsService{stats: []*domain.ConferenceHotelStats{
		{ConferenceHotelID: "ch1", HotelName: "Hyatt Downtown", OrderCount: 3, RoomCount: 7, OccupantCount: 19},
	}}
	ctrl := NewAdminController(discardLogger(), &mockOrderService{}, &mockConferenceService{}, stats)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats/conferences", nil)
	w := httptest.NewRecorder()

	ctrl.ConferenceStats(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data []*domain.ConferenceHotelStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].OccupantCount != 19 {
		t.Fatalf("unexpected data: %+v", resp.Data)
	}
}
