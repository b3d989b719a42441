package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/gamassss/urlist/internal/metrics"
	"github.com/gamassss/urlist/pkg/liststate"
)

type URLRepository interface {
	Create(ctx context.Context, in *domain.NewURL) (*domain.URL, error)
	GetByListID(ctx context.Context, listID string) ([]domain.URL, error)
	GetByID(ctx context.Context, id string) (*domain.URL, error)
	Update(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error)
	Delete(ctx context.Context, id string) (bool, error)
	UpdatePositions(ctx context.Context, listID string, updates []domain.PositionUpdate) error
	ListExists(ctx context.Context, listID string) (bool, error)
}

type MetadataFetcher interface {
	Fetch(ctx context.Context, rawURL string) metadata.Metadata
}

type MetadataCache interface {
	GetMetadata(ctx context.Context, rawURL string) (*metadata.Metadata, error)
	SetMetadata(ctx context.Context, rawURL string, md *metadata.Metadata, ttl time.Duration) error
}

type URLServiceConfig struct {
	// Enrich fills missing titles and descriptions from the page on create.
	Enrich   bool
	CacheTTL time.Duration
}

type URLService struct {
	urlRepo URLRepository
	fetcher MetadataFetcher
	cache   MetadataCache
	cfg     URLServiceConfig
}

func NewURLService(urlRepo URLRepository, fetcher MetadataFetcher, cache MetadataCache, cfg URLServiceConfig) *URLService {
	return &URLService{
		urlRepo: urlRepo,
		fetcher: fetcher,
		cache:   cache,
		cfg:     cfg,
	}
}

func (s *URLService) ListURLs(ctx context.Context, listID string) ([]domain.URL, error) {
	urls, err := s.urlRepo.GetByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get urls: %w", err)
	}
	return urls, nil
}

func (s *URLService) GetURL(ctx context.Context, id string) (*domain.URL, error) {
	return s.urlRepo.GetByID(ctx, id)
}

func (s *URLService) CreateURL(ctx context.Context, listID string, req *domain.CreateURLRequest) (*domain.URL, error) {
	in := &domain.NewURL{
		ListID:      listID,
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
	}

	if s.cfg.Enrich && req.WantsMetadata() {
		// No outbound request for a list that does not exist.
		exists, err := s.urlRepo.ListExists(ctx, listID)
		if err != nil {
			return nil, fmt.Errorf("failed to check list: %w", err)
		}
		if !exists {
			return nil, domain.ErrListNotFound
		}

		md := s.FetchMetadata(ctx, req.URL)
		if in.Title == nil && md.Title != "" {
			in.Title = &md.Title
		}
		if in.Description == nil && md.Description != "" {
			in.Description = &md.Description
		}
		if md.FaviconURL != "" {
			in.FaviconURL = &md.FaviconURL
		}
	}

	url, err := s.urlRepo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	metrics.URLsCreatedTotal.Inc()
	return url, nil
}

func (s *URLService) UpdateURL(ctx context.Context, id string, patch domain.URLPatch) (*domain.URL, error) {
	return s.urlRepo.Update(ctx, id, patch)
}

func (s *URLService) DeleteURL(ctx context.Context, id string) error {
	deleted, err := s.urlRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete url: %w", err)
	}
	if !deleted {
		return domain.ErrURLNotFound
	}
	return nil
}

// ReorderURLs applies all positions atomically and returns the list's URLs in
// their new order. Every id must belong to listID.
func (s *URLService) ReorderURLs(ctx context.Context, listID string, updates []domain.PositionUpdate) ([]domain.URL, error) {
	current, err := s.urlRepo.GetByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get urls: %w", err)
	}

	members := make(map[string]struct{}, len(current))
	for _, u := range current {
		members[u.ID] = struct{}{}
	}
	for _, u := range updates {
		if _, ok := members[u.ID]; !ok {
			return nil, fmt.Errorf("url %s: %w", u.ID, domain.ErrURLNotFound)
		}
	}

	if err := s.urlRepo.UpdatePositions(ctx, listID, updates); err != nil {
		return nil, err
	}

	return liststate.SortedURLs(liststate.ApplyPositions(current, updates)), nil
}

// FetchMetadata returns cached page metadata, fetching it on a miss. It never
// fails; an unreachable page yields empty metadata, which is not cached.
func (s *URLService) FetchMetadata(ctx context.Context, rawURL string) metadata.Metadata {
	log := logger.FromContext(ctx)

	cached, err := s.cache.GetMetadata(ctx, rawURL)
	if err != nil {
		log.Warn("Metadata cache lookup failed", slog.String("url", rawURL), slog.Any("error", err))
	}
	if cached != nil {
		return *cached
	}

	md := s.fetcher.Fetch(ctx, rawURL)
	if md.IsEmpty() {
		return md
	}

	if err := s.cache.SetMetadata(ctx, rawURL, &md, s.cfg.CacheTTL); err != nil {
		log.Warn("Failed to cache metadata", slog.String("url", rawURL), slog.Any("error", err))
	}

	return md
}
