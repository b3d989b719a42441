package mocks

import (
	"context"
	"time"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/stretchr/testify/mock"
)

// MockCache stands in for the redis list and metadata cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetList(ctx context.Context, slug string) (*domain.List, error) {
	args := m.Called(ctx, slug)
	return listOrNil(args, 0), args.Error(1)
}

func (m *MockCache) SetList(ctx context.Context, list *domain.List, ttl time.Duration) error {
	args := m.Called(ctx, list, ttl)
	return args.Error(0)
}

func (m *MockCache) DeleteList(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func (m *MockCache) GetMetadata(ctx context.Context, rawURL string) (*metadata.Metadata, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*metadata.Metadata), args.Error(1)
}

func (m *MockCache) SetMetadata(ctx context.Context, rawURL string, md *metadata.Metadata, ttl time.Duration) error {
	args := m.Called(ctx, rawURL, md, ttl)
	return args.Error(0)
}

type MockMetadataFetcher struct {
	mock.Mock
}

func (m *MockMetadataFetcher) Fetch(ctx context.Context, rawURL string) metadata.Metadata {
	args := m.Called(ctx, rawURL)
	return args.Get(0).(metadata.Metadata)
}
