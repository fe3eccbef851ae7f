// Package persistence implements the domain reader interfaces with a
// read-through cache in front of the live WordPress-backed service.
// Every entry is registered under content tags ("posts", "tags") and
// under the public page paths it feeds, so both tag- and path-based
// revalidation from the webhook drop the right entries.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/cache"
)

const (
	// DefaultTTL mirrors the hourly regeneration window of the rendered
	// pages; revalidation usually drops entries well before expiry.
	DefaultTTL = time.Hour

	tagPosts = "posts"
	tagTags  = "tags"
)

// CachedReader decorates a PostReader and a TagReader with read-through
// caching. Failures in the cache itself are logged and bypassed; they
// never fail a read.
type CachedReader struct {
	posts domain.PostReader
	tags  domain.TagReader
	store cache.Store
	ttl   time.Duration
}

func NewCachedReader(posts domain.PostReader, tags domain.TagReader, store cache.Store, ttl time.Duration) *CachedReader {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedReader{posts: posts, tags: tags, store: store, ttl: ttl}
}

func (r *CachedReader) GetPosts(ctx context.Context, page, perPage int) ([]domain.Post, error) {
	key := fmt.Sprintf("posts:page:%d:per:%d", page, perPage)
	cacheTags := []string{tagPosts, cache.PathKey("/blog")}
	if page <= 1 {
		// The home page renders the first page of posts.
		cacheTags = append(cacheTags, cache.PathKey("/"))
	}
	return readThrough(ctx, r, key, cacheTags, func(ctx context.Context) ([]domain.Post, error) {
		return r.posts.GetPosts(ctx, page, perPage)
	})
}

func (r *CachedReader) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	key := "posts:slug:" + slug
	cacheTags := []string{tagPosts, cache.PathKey("/blog/" + slug)}
	return readThrough(ctx, r, key, cacheTags, func(ctx context.Context) (domain.Post, error) {
		return r.posts.GetPostBySlug(ctx, slug)
	})
}

func (r *CachedReader) GetPostsByTag(ctx context.Context, tagID, page, perPage int) ([]domain.Post, error) {
	key := fmt.Sprintf("posts:tag:%d:page:%d:per:%d", tagID, page, perPage)
	cacheTags := []string{tagPosts}
	return readThrough(ctx, r, key, cacheTags, func(ctx context.Context) ([]domain.Post, error) {
		return r.posts.GetPostsByTag(ctx, tagID, page, perPage)
	})
}

func (r *CachedReader) GetTags(ctx context.Context, perPage int) ([]domain.Tag, error) {
	key := fmt.Sprintf("tags:per:%d", perPage)
	cacheTags := []string{tagTags, cache.PathKey("/tags")}
	return readThrough(ctx, r, key, cacheTags, func(ctx context.Context) ([]domain.Tag, error) {
		return r.tags.GetTags(ctx, perPage)
	})
}

func (r *CachedReader) GetTagBySlug(ctx context.Context, slug string) (domain.Tag, error) {
	key := "tags:slug:" + slug
	cacheTags := []string{tagTags, cache.PathKey("/tags/" + slug)}
	return readThrough(ctx, r, key, cacheTags, func(ctx context.Context) (domain.Tag, error) {
		return r.tags.GetTagBySlug(ctx, slug)
	})
}

// readThrough serves key from the cache when possible and loads, caches
// and returns the live value otherwise. Errors from load are returned
// untouched and never cached.
func readThrough[T any](ctx context.Context, r *CachedReader, key string, tags []string, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if raw, ok, err := r.store.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed, falling through")
	} else if ok {
		var cached T
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		log.Warn().Str("key", key).Msg("Dropping undecodable cache entry")
		if err := r.store.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to drop cache entry")
		}
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Failed to encode cache entry")
		return value, nil
	}
	if err := r.store.Set(ctx, key, string(encoded), r.ttl, tags...); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
	return value, nil
}
