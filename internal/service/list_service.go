package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/logger"
	"github.com/gamassss/urlist/internal/metrics"
	"github.com/gamassss/urlist/pkg/generator"
	"github.com/gamassss/urlist/pkg/liststate"
)

const maxSlugRetries = 5

type ListRepository interface {
	Create(ctx context.Context, title, slug string, description *string) (*domain.List, error)
	GetByID(ctx context.Context, id string) (*domain.List, error)
	GetBySlug(ctx context.Context, slug string) (*domain.List, error)
	GetAll(ctx context.Context) ([]domain.List, error)
	Update(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error)
	Delete(ctx context.Context, id string) (bool, error)
	IsSlugAvailable(ctx context.Context, slug, excludeID string) (bool, error)
	Publish(ctx context.Context, id string) (*domain.List, error)
	Unpublish(ctx context.Context, id string) (*domain.List, error)
}

type ListCache interface {
	GetList(ctx context.Context, slug string) (*domain.List, error)
	SetList(ctx context.Context, list *domain.List, ttl time.Duration) error
	DeleteList(ctx context.Context, slug string) error
}

type ListService struct {
	listRepo ListRepository
	cache    ListCache
	cacheTTL time.Duration
}

func NewListService(listRepo ListRepository, cache ListCache, cacheTTL time.Duration) *ListService {
	return &ListService{
		listRepo: listRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *ListService) ListLists(ctx context.Context, filter domain.ListFilter) ([]domain.List, error) {
	lists, err := s.listRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lists: %w", err)
	}

	if filter.Published == nil {
		return lists, nil
	}
	if *filter.Published {
		return liststate.Published(lists), nil
	}
	return liststate.Unpublished(lists), nil
}

func (s *ListService) GetList(ctx context.Context, id string) (*domain.List, error) {
	return s.listRepo.GetByID(ctx, id)
}

// GetListBySlug reads through the slug cache. Cache failures fall back to
// the store. Only published lists are cached since the share page serves
// nothing else; an unpublished row read just before a concurrent publish
// would otherwise keep the link dark for the whole TTL.
func (s *ListService) GetListBySlug(ctx context.Context, slug string) (*domain.List, error) {
	log := logger.FromContext(ctx)

	list, err := s.cache.GetList(ctx, slug)
	if err != nil {
		log.Warn("List cache lookup failed", slog.String("slug", slug), slog.Any("error", err))
	}
	if list != nil {
		return list, nil
	}

	list, err = s.listRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !list.IsPublished {
		return list, nil
	}

	if err := s.cache.SetList(ctx, list, s.cacheTTL); err != nil {
		log.Warn("Failed to cache list", slog.String("slug", slug), slog.Any("error", err))
	}

	return list, nil
}

// GenerateSlug derives a slug from title and appends -1, -2, ... until one
// is free. The result can still lose a race with a concurrent insert.
func (s *ListService) GenerateSlug(ctx context.Context, title string) (string, error) {
	base := generator.Slugify(title)
	slug := base

	for n := 1; ; n++ {
		available, err := s.listRepo.IsSlugAvailable(ctx, slug, "")
		if err != nil {
			return "", fmt.Errorf("failed to check slug availability: %w", err)
		}
		if available {
			return slug, nil
		}
		slug = generator.WithSuffix(base, n)
	}
}

func (s *ListService) CreateList(ctx context.Context, req *domain.CreateListRequest) (*domain.List, error) {
	if req.Slug != "" {
		list, err := s.listRepo.Create(ctx, req.Title, req.Slug, req.Description)
		if err != nil {
			if errors.Is(err, domain.ErrSlugConflict) {
				metrics.SlugConflictsTotal.Inc()
			}
			return nil, err
		}
		metrics.ListsCreatedTotal.WithLabelValues("given").Inc()
		return list, nil
	}

	log := logger.FromContext(ctx)

	for i := 0; i < maxSlugRetries; i++ {
		slug, err := s.GenerateSlug(ctx, req.Title)
		if err != nil {
			return nil, err
		}

		list, err := s.listRepo.Create(ctx, req.Title, slug, req.Description)
		if err == nil {
			metrics.ListsCreatedTotal.WithLabelValues("generated").Inc()
			return list, nil
		}

		if !errors.Is(err, domain.ErrSlugConflict) {
			return nil, fmt.Errorf("failed to create list: %w", err)
		}

		metrics.SlugConflictsTotal.Inc()
		log.Debug("Generated slug taken concurrently, retrying",
			slog.String("slug", slug),
			slog.Int("attempt", i+1),
		)
	}

	return nil, fmt.Errorf("failed to generate slug after %d retries: %w", maxSlugRetries, domain.ErrSlugConflict)
}

func (s *ListService) UpdateList(ctx context.Context, id string, patch domain.ListPatch) (*domain.List, error) {
	current, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Slug != nil && *patch.Slug != current.Slug {
		available, err := s.listRepo.IsSlugAvailable(ctx, *patch.Slug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug availability: %w", err)
		}
		if !available {
			metrics.SlugConflictsTotal.Inc()
			return nil, domain.ErrSlugConflict
		}
	}

	list, err := s.listRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrSlugConflict) {
			metrics.SlugConflictsTotal.Inc()
		}
		return nil, err
	}

	s.invalidate(ctx, current.Slug)
	return list, nil
}

func (s *ListService) DeleteList(ctx context.Context, id string) error {
	current, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.listRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}
	if !deleted {
		return domain.ErrListNotFound
	}

	s.invalidate(ctx, current.Slug)
	return nil
}

func (s *ListService) SetPublished(ctx context.Context, id string, published bool) (*domain.List, error) {
	var (
		list *domain.List
		err  error
	)
	if published {
		list, err = s.listRepo.Publish(ctx, id)
	} else {
		list, err = s.listRepo.Unpublish(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, list.Slug)
	return list, nil
}

func (s *ListService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.DeleteList(ctx, slug); err != nil {
		logger.FromContext(ctx).Warn("Failed to invalidate cached list",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
}
