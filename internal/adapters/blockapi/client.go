// Package blockapi is an HTTP client for the room block reservation API. It
// implements the lookup and submission ports the registration wizard needs, so
// a kiosk or CLI frontend can drive the wizard against a remote server.
package blockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"roomblock/internal/domain"
	"roomblock/internal/registration"
)

type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a client for the API at baseURL (e.g. "https://rooms.example.com").
func NewClient(baseURL string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, client: client}
}

var (
	_ registration.ConferenceLookup = (*Client)(nil)
	_ registration.HotelLookup      = (*Client)(nil)
	_ registration.OrderSubmitter   = (*Client)(nil)
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return domain.ErrInvalidInput
	case resp.StatusCode >= 300:
		var body struct {
			Error errorBody `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&body) == nil && body.Error.Message != "" {
			return fmt.Errorf("api returned status %d: %s", resp.StatusCode, body.Error.Message)
		}
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}
	return nil
}

// GetConferenceByPasscode looks the conference up with the public passcode
// filter. An empty result set means no conference carries that passcode.
func (c *Client) GetConferenceByPasscode(ctx context.Context, passcode string) (*domain.Conference, error) {
	query := url.Values{}
	query.Set("filters[passcode][$eq]", passcode)
	var body struct {
		Data []*domain.Conference `json:"data"`
	}
	if err := c.get(ctx, "/api/conferences", query, &body); err != nil {
		return nil, err
	}
	if len(body.Data) == 0 {
		return nil, domain.ErrNotFound
	}
	return body.Data[0], nil
}

func (c *Client) GetConferenceByID(ctx context.Context, id string) (*domain.Conference, error) {
	var body struct {
		Data *domain.Conference `json:"data"`
	}
	if err := c.get(ctx, "/api/conferences/"+url.PathEscape(id), nil, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) ListHotelsForConference(ctx context.Context, conferenceID string, filters domain.HotelFilters) ([]*domain.ConferenceHotel, error) {
	query := url.Values{}
	query.Set("filters[conference][$eq]", conferenceID)
	if filters.HasBusParking != nil {
		query.Set("filters[hasBusParking][$eq]", fmt.Sprintf("%t", *filters.HasBusParking))
	}
	if filters.HasTransitToVenue != nil {
		query.Set("filters[hasTransitToVenue][$eq]", fmt.Sprintf("%t", *filters.HasTransitToVenue))
	}
	var body struct {
		Data []*domain.ConferenceHotel `json:"data"`
	}
	if err := c.get(ctx, "/api/conference-hotels", query, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (c *Client) GetHotelByID(ctx context.Context, id string) (*domain.ConferenceHotel, error) {
	var body struct {
		Data *domain.ConferenceHotel `json:"data"`
	}
	if err := c.get(ctx, "/api/conference-hotels/"+url.PathEscape(id), nil, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

// SubmitOrder posts the draft for persistence. Each call creates a new order;
// callers decide whether to retry after a reported failure.
func (c *Client) SubmitOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	payload := struct {
		Data *domain.OrderDraft `json:"data"`
	}{Data: draft}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders/submit", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	var body struct {
		Data *domain.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return body.Data, nil
}
