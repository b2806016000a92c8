package services

import (
	"context"

	"github.com/esathi/engineersathi/internal/app/models/dto"
)

type statsStore interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

// StatsService defines the interface for platform statistics
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsServiceImpl struct {
	statsRepo statsStore
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo statsStore) StatsService {
	return &statsServiceImpl{statsRepo: statsRepo}
}

// GetStats returns the platform summary counters.
func (s *statsServiceImpl) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	return s.statsRepo.GetStats(ctx)
}
