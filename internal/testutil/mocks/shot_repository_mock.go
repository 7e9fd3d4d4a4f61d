package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// MockShotRepository is a mock implementation of repository.ShotRepository
type MockShotRepository struct {
	mock.Mock
}

func (m *MockShotRepository) ListForPlayer(ctx context.Context, star string, lineupKeys []string) ([]models.ShotRecord, error) {
	args := m.Called(ctx, star, lineupKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShotRecord), args.Error(1)
}

func (m *MockShotRepository) CountForPlayer(ctx context.Context, star string) (int, error) {
	args := m.Called(ctx, star)
	return args.Int(0), args.Error(1)
}
