// Package cache provides the tag-aware response cache that backs the
// read API and that the revalidation webhook invalidates. Entries are
// stored under a key, optionally registered under any number of cache
// tags, and can be dropped individually, by tag, or by page path.
package cache

import (
	"context"
	"time"
)

// Store is a tag-aware key/value cache. Implementations must treat a
// missing key as a miss, not an error.
type Store interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl and registers the key under
	// each given tag. A ttl of zero means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration, tags ...string) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// DeleteByTag removes every key registered under tag and forgets
	// the tag itself.
	DeleteByTag(ctx context.Context, tag string) error
}

// PathKey is the cache tag under which entries belonging to a page path
// are registered. The webhook and the cached reader must agree on this
// scheme for path revalidation to hit.
func PathKey(path string) string {
	return "path:" + path
}

// tagKey is where a tag's member keys are tracked.
func tagKey(tag string) string {
	return "cachetag:" + tag
}

// Invalidator exposes the two invalidation operations the revalidation
// webhook needs, decoupling it from the Store interface.
type Invalidator struct {
	store Store
}

func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{store: store}
}

// RevalidatePath drops whatever is cached for the given page path.
func (i *Invalidator) RevalidatePath(ctx context.Context, path string) error {
	return i.store.DeleteByTag(ctx, PathKey(path))
}

// RevalidateTag drops every entry registered under the given cache tag.
func (i *Invalidator) RevalidateTag(ctx context.Context, tag string) error {
	return i.store.DeleteByTag(ctx, tag)
}
