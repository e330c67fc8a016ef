package services

import (
	"context"
	"fmt"
	"time"

	"roomblock/internal/domain"
)

type statsService struct {
	statsRepo      domain.StatsRepository
	contextTimeout time.Duration
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(statsRepo domain.StatsRepository, timeout time.Duration) domain.StatsService {
	return &statsService{
		statsRepo:      statsRepo,
		contextTimeout: timeout,
	}
}

func (s *statsService) ConferenceStats(ctx context.Context) ([]*domain.ConferenceHotelStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	stats, err := s.statsRepo.ConferenceStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("conference stats: %w", err)
	}
	if stats == nil {
		stats = []*domain.ConferenceHotelStats{}
	}
	return stats, nil
}
