package mocks

import (
	"context"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/stretchr/testify/mock"
)

type MockListService struct {
	mock.Mock
}

func (m *MockListService) ListLists(ctx context.Context, filter domain.ListFilter) ([]domain.List, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.List), args.Error(1)
}

func (m *MockListService) GetList(ctx context.Context, id string) (*domain.List, error) {
	args := m.Called(ctx, id)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListService) GetListBySlug(ctx context.Context, slug string) (*domain.List, error) {
	args := m.Called(ctx, slug)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListService) CreateList(ctx context.Context, req *domain.CreateListRequest) (*domain.List, error) {
	args := m.Called(ctx, req)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListService) UpdateList(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error) {
	args := m.Called(ctx, id, patch)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockListService) DeleteList(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListService) SetPublished(ctx context.Context, id string, published bool) (*domain.List, error) {
	args := m.Called(ctx, id, published)
	return listOrNil(args, 0), args.Error(1)
}

type MockURLService struct {
	mock.Mock
}

func (m *MockURLService) ListURLs(ctx context.Context, listID string) ([]domain.URL, error) {
	args := m.Called(ctx, listID)
	return urlsOrNil(args, 0), args.Error(1)
}

func (m *MockURLService) GetURL(ctx context.Context, id string) (*domain.URL, error) {
	args := m.Called(ctx, id)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLService) CreateURL(ctx context.Context, listID string, req *domain.CreateURLRequest) (*domain.URL, error) {
	args := m.Called(ctx, listID, req)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLService) UpdateURL(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error) {
	args := m.Called(ctx, id, patch)
	return urlOrNil(args, 0), args.Error(1)
}

func (m *MockURLService) DeleteURL(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockURLService) ReorderURLs(ctx context.Context, listID string, updates []domain.PositionUpdate) ([]domain.URL, error) {
	args := m.Called(ctx, listID, updates)
	return urlsOrNil(args, 0), args.Error(1)
}

func (m *MockURLService) FetchMetadata(ctx context.Context, rawURL string) metadata.Metadata {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(metadata.Metadata)
}
