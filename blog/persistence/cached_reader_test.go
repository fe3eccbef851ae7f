package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/cache"
)

type countingReader struct {
	postCalls int
	tagCalls  int
	post      domain.Post
	tag       domain.Tag
	err       error
}

func (c *countingReader) GetPosts(_ context.Context, _, _ int) ([]domain.Post, error) {
	c.postCalls++
	return []domain.Post{c.post}, c.err
}

func (c *countingReader) GetPostBySlug(_ context.Context, _ string) (domain.Post, error) {
	c.postCalls++
	return c.post, c.err
}

func (c *countingReader) GetPostsByTag(_ context.Context, _, _, _ int) ([]domain.Post, error) {
	c.postCalls++
	return []domain.Post{c.post}, c.err
}

func (c *countingReader) GetTags(_ context.Context, _ int) ([]domain.Tag, error) {
	c.tagCalls++
	return []domain.Tag{c.tag}, c.err
}

func (c *countingReader) GetTagBySlug(_ context.Context, _ string) (domain.Tag, error) {
	c.tagCalls++
	return c.tag, c.err
}

func samplePost() domain.Post {
	date, _ := domain.NewPostDate("2024-01-01T00:00:00")
	return domain.Post{
		ID:        7,
		Title:     "Hello",
		Slug:      "hello",
		Content:   "<p>hi</p>",
		CreatedAt: date,
		UpdatedAt: date,
		Tags:      []domain.Tag{{ID: 1, Name: "go", Slug: "go", Count: 2}},
	}
}

func newCachedReader(t *testing.T, upstream *countingReader) (*CachedReader, cache.Store) {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(store.Close)
	return NewCachedReader(upstream, upstream, store, time.Minute), store
}

func TestCachedReaderServesFromCache(t *testing.T) {
	upstream := &countingReader{post: samplePost()}
	reader, _ := newCachedReader(t, upstream)
	ctx := context.Background()

	first, err := reader.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)
	second, err := reader.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.postCalls, "second read must come from cache")
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Slug, second.Slug)
	assert.Equal(t, first.CreatedAt.Time().Unix(), second.CreatedAt.Time().Unix())
	require.Len(t, second.Tags, 1)
	assert.Equal(t, 1, second.Tags[0].ID.Value())
}

func TestCachedReaderTagInvalidationForcesReload(t *testing.T) {
	upstream := &countingReader{post: samplePost()}
	reader, store := newCachedReader(t, upstream)
	ctx := context.Background()
	inv := cache.NewInvalidator(store)

	_, err := reader.GetPosts(ctx, 1, 10)
	require.NoError(t, err)
	require.NoError(t, inv.RevalidateTag(ctx, "posts"))

	_, err = reader.GetPosts(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.postCalls)
}

func TestCachedReaderPathInvalidationForcesReload(t *testing.T) {
	upstream := &countingReader{post: samplePost()}
	reader, store := newCachedReader(t, upstream)
	ctx := context.Background()
	inv := cache.NewInvalidator(store)

	_, err := reader.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)
	require.NoError(t, inv.RevalidatePath(ctx, "/blog/hello"))

	_, err = reader.GetPostBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.postCalls)
}

func TestCachedReaderDoesNotCacheFailures(t *testing.T) {
	upstream := &countingReader{err: domain.ErrNotFound}
	reader, _ := newCachedReader(t, upstream)
	ctx := context.Background()

	_, err := reader.GetPostBySlug(ctx, "missing")
	require.Error(t, err)
	_, err = reader.GetPostBySlug(ctx, "missing")
	require.Error(t, err)
	assert.Equal(t, 2, upstream.postCalls)
}

func TestCachedReaderTags(t *testing.T) {
	upstream := &countingReader{tag: domain.Tag{ID: 3, Name: "go", Slug: "go", Count: 1}}
	reader, _ := newCachedReader(t, upstream)
	ctx := context.Background()

	_, err := reader.GetTags(ctx, 100)
	require.NoError(t, err)
	_, err = reader.GetTags(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, upstream.tagCalls)

	tag, err := reader.GetTagBySlug(ctx, "go")
	require.NoError(t, err)
	assert.Equal(t, 3, tag.ID.Value())
}
