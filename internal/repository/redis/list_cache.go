package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gamassss/urlist/internal/domain"
	"github.com/gamassss/urlist/internal/metadata"
	"github.com/gamassss/urlist/internal/metrics"
	"github.com/redis/go-redis/v9"
)

// ListCache keeps lists by slug (share links) and fetched page metadata.
// A miss is reported as (nil, nil).
type ListCache struct {
	client *redis.Client
}

func NewListCache(client *redis.Client) *ListCache {
	return &ListCache{client: client}
}

func listKey(slug string) string {
	return fmt.Sprintf("list:slug:%s", slug)
}

func metadataKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return "meta:" + hex.EncodeToString(sum[:])
}

func (r *ListCache) GetList(ctx context.Context, slug string) (*domain.List, error) {
	var list domain.List
	found, err := r.get(ctx, "list", listKey(slug), &list)
	if err != nil || !found {
		return nil, err
	}
	return &list, nil
}

func (r *ListCache) SetList(ctx context.Context, list *domain.List, ttl time.Duration) error {
	return r.set(ctx, listKey(list.Slug), list, ttl)
}

func (r *ListCache) DeleteList(ctx context.Context, slug string) error {
	return r.client.Del(ctx, listKey(slug)).Err()
}

func (r *ListCache) GetMetadata(ctx context.Context, rawURL string) (*metadata.Metadata, error) {
	var md metadata.Metadata
	found, err := r.get(ctx, "metadata", metadataKey(rawURL), &md)
	if err != nil || !found {
		return nil, err
	}
	return &md, nil
}

func (r *ListCache) SetMetadata(ctx context.Context, rawURL string, md *metadata.Metadata, ttl time.Duration) error {
	return r.set(ctx, metadataKey(rawURL), md, ttl)
}

func (r *ListCache) get(ctx context.Context, cache, key string, dst interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheLookup(cache, "miss")
		return false, nil
	}
	if err != nil {
		metrics.RecordCacheLookup(cache, "error")
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		metrics.RecordCacheLookup(cache, "error")
		return false, err
	}

	metrics.RecordCacheLookup(cache, "hit")
	return true, nil
}

func (r *ListCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}
