package mocks

import (
	"context"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockURLRepository struct {
	mock.Mock
}

func (m *MockURLRepository) Create(ctx context.Context, in *domain.NewURL) (*domain.URL, error) {
	args := m.Called(ctx, in)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLRepository) GetByListID(ctx context.Context, listID string) ([]domain.URL, error) {
	args := m.Called(ctx, listID)
	return urlsOrNil(args, 0), args.Error(1)
}

func (m *MockURLRepository) GetByID(ctx context.Context, id string) (*domain.URL, error) {
	args := m.Called(ctx, id)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLRepository) Update(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error) {
	args := m.Called(ctx, id, patch)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockURLRepository) UpdatePositions(ctx context.Context, listID string, updates []domain.PositionUpdate) error {
	args := m.Called(ctx, listID, updates)
	return args.Error(0)
}

func (m *MockURLRepository) ListExists(ctx context.Context, listID string) (bool, error) {
	args := m.Called(ctx, listID)
	return args.Bool(0), args.Error(1)
}
