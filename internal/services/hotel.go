package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomblock/internal/domain"
)

type hotelService struct {
	hotelRepo      domain.ConferenceHotelRepository
	contextTimeout time.Duration
}

// NewHotelService creates a HotelService backed by the given repository.
func NewHotelService(hotelRepo domain.ConferenceHotelRepository, timeout time.Duration) domain.HotelService {
	return &hotelService{
		hotelRepo:      hotelRepo,
		contextTimeout: timeout,
	}
}

func (s *hotelService) ListForConference(ctx context.Context, conferenceID string, filters domain.HotelFilters) ([]*domain.ConferenceHotel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if conferenceID == "" {
		return nil, domain.ErrInvalidInput
	}
	hotels, err := s.hotelRepo.ListByConference(ctx, conferenceID, filters)
	if err != nil {
		return nil, fmt.Errorf("list conference hotels: %w", err)
	}
	if hotels == nil {
		hotels = []*domain.ConferenceHotel{}
	}
	return hotels, nil
}

func (s *hotelService) GetByID(ctx context.Context, id string) (*domain.ConferenceHotel, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference hotel: %w", err)
	}
	return hotel, nil
}
