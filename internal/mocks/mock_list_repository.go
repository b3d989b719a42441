package mocks

import (
	"context"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(ctx context.Context, title, slug string, description *string) (*domain.List, error) {
	args := m.Called(ctx, title, slug, description)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListRepository) GetByID(ctx context.Context, id string) (*domain.List, error) {
	args := m.Called(ctx, id)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListRepository) GetBySlug(ctx context.Context, slug string) (*domain.List, error) {
	args := m.Called(ctx, slug)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListRepository) GetAll(ctx context.Context) ([]domain.List, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.List), args.Error(1)
}

func (m *MockListRepository) Update(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error) {
	args := m.Called(ctx, id, patch)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockListRepository) IsSlugAvailable(ctx context.Context, slug, excludeID string) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockListRepository) Publish(ctx context.Context, id string) (*domain.List, error) {
	args := m.Called(ctx, id)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListRepository) Unpublish(ctx context.Context, id string) (*domain.List, error) {
	args := m.Called(ctx, id)
	return listOrNil(args, 0), args.Error(1)
}

func listOrNil(args mock.Arguments, i int) *domain.List {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*domain.List)
}

func urlOrNil(args mock.Arguments, i int) *domain.URL {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*domain.URL)
}

func urlsOrNil(args mock.Arguments, i int) []domain.URL {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]domain.URL)
}
