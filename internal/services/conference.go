package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roomblock/internal/domain"
	"roomblock/internal/validate"
)

type conferenceService struct {
	conferenceRepo domain.ConferenceRepository
	contextTimeout time.Duration
}

// NewConferenceService creates a ConferenceService backed by the given repository.
func NewConferenceService(conferenceRepo domain.ConferenceRepository, timeout time.Duration) domain.ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		contextTimeout: timeout,
	}
}

func (s *conferenceService) GetByPasscode(ctx context.Context, passcode string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	code := validate.FilterPasscode(passcode)
	if !validate.IsPasscode(code) {
		return nil, domain.ErrInvalidInput
	}
	conf, err := s.conferenceRepo.GetByPasscode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference by passcode: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conf, err := s.conferenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return conf, nil
}

func (s *conferenceService) List(ctx context.Context) ([]*domain.Conference, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	conferences, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	if conferences == nil {
		conferences = []*domain.Conference{}
	}
	return conferences, nil
}
