package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// MockLineupRepository is a mock implementation of repository.LineupRepository
type MockLineupRepository struct {
	mock.Mock
}

func (m *MockLineupRepository) Efficiency(ctx context.Context, filter models.LineupFilter) ([]models.LineupEfficiency, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LineupEfficiency), args.Error(1)
}

func (m *MockLineupRepository) Tendencies(ctx context.Context, star string) ([]models.LineupTendencies, error) {
	args := m.Called(ctx, star)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LineupTendencies), args.Error(1)
}

func (m *MockLineupRepository) ComboKeys(ctx context.Context, star string) ([]string, error) {
	args := m.Called(ctx, star)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
