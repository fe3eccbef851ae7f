package application

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/wordpress"
)

// stubGateway returns canned payloads or errors per operation.
type stubGateway struct {
	posts      any
	post       any
	tags       any
	tag        any
	err        error
	lastTagID  int
	lastPage   int
	lastPerPag int
}

func (s *stubGateway) GetPosts(_ context.Context, page, perPage int) (any, error) {
	s.lastPage, s.lastPerPag = page, perPage
	return s.posts, s.err
}

func (s *stubGateway) GetPostsByTag(_ context.Context, tagID, page, perPage int) (any, error) {
	s.lastTagID, s.lastPage, s.lastPerPag = tagID, page, perPage
	return s.posts, s.err
}

func (s *stubGateway) GetPostBySlug(_ context.Context, _ string) (any, error) {
	return s.post, s.err
}

func (s *stubGateway) GetTags(_ context.Context, perPage int) (any, error) {
	s.lastPerPag = perPage
	return s.tags, s.err
}

func (s *stubGateway) GetTagBySlug(_ context.Context, _ string) (any, error) {
	return s.tag, s.err
}

func rawPost(id int, slug string) map[string]any {
	return map[string]any{
		"id":       float64(id),
		"slug":     slug,
		"title":    map[string]any{"rendered": "Title"},
		"content":  map[string]any{"rendered": "<p>body</p>"},
		"excerpt":  map[string]any{"rendered": ""},
		"date":     "2024-01-01T00:00:00",
		"modified": "2024-01-02T00:00:00",
	}
}

func TestBlogServiceGetPosts(t *testing.T) {
	t.Run("maps validated posts", func(t *testing.T) {
		gw := &stubGateway{posts: []any{rawPost(1, "first"), rawPost(2, "second")}}
		svc := NewBlogService(gw)

		posts, err := svc.GetPosts(context.Background(), 1, 10)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "first", posts[0].Slug.String())
	})

	t.Run("defaults page and perPage", func(t *testing.T) {
		gw := &stubGateway{posts: []any{}}
		svc := NewBlogService(gw)

		_, err := svc.GetPosts(context.Background(), 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, gw.lastPage)
		assert.Equal(t, 10, gw.lastPerPag)
	})

	t.Run("gateway failure becomes NetworkError", func(t *testing.T) {
		gw := &stubGateway{err: &wordpress.APIError{Message: "boom", Status: http.StatusBadGateway}}
		svc := NewBlogService(gw)

		_, err := svc.GetPosts(context.Background(), 1, 10)
		var netErr domain.NetworkError
		require.ErrorAs(t, err, &netErr)
	})

	t.Run("validation failure short-circuits mapping", func(t *testing.T) {
		gw := &stubGateway{posts: "not-an-array"}
		svc := NewBlogService(gw)

		_, err := svc.GetPosts(context.Background(), 1, 10)
		var valErr domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Contains(t, valErr.Message, "Posts must be an array")
	})
}

func TestBlogServiceGetPostBySlug(t *testing.T) {
	t.Run("maps a single post", func(t *testing.T) {
		gw := &stubGateway{post: rawPost(7, "hello")}
		svc := NewBlogService(gw)

		post, err := svc.GetPostBySlug(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, 7, post.ID.Value())
	})

	t.Run("upstream 404 becomes ErrNotFound", func(t *testing.T) {
		gw := &stubGateway{err: &wordpress.APIError{Message: "Post not found", Status: http.StatusNotFound}}
		svc := NewBlogService(gw)

		_, err := svc.GetPostBySlug(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestBlogServiceGetPostsByTag(t *testing.T) {
	gw := &stubGateway{posts: []any{rawPost(1, "tagged")}}
	svc := NewBlogService(gw)

	posts, err := svc.GetPostsByTag(context.Background(), 3, 1, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 3, gw.lastTagID)
}

func TestBlogServiceGetTags(t *testing.T) {
	t.Run("maps validated tags", func(t *testing.T) {
		gw := &stubGateway{tags: []any{
			map[string]any{"id": float64(1), "name": "go", "slug": "go", "taxonomy": "post_tag", "count": float64(4)},
		}}
		svc := NewBlogService(gw)

		tags, err := svc.GetTags(context.Background(), 100)
		require.NoError(t, err)
		require.Len(t, tags, 1)
		assert.Equal(t, 4, tags[0].Count.Value())
	})

	t.Run("defaults perPage", func(t *testing.T) {
		gw := &stubGateway{tags: []any{}}
		svc := NewBlogService(gw)

		_, err := svc.GetTags(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, 100, gw.lastPerPag)
	})
}

func TestBlogServiceGetTagBySlug(t *testing.T) {
	t.Run("maps a single tag", func(t *testing.T) {
		gw := &stubGateway{tag: map[string]any{
			"id": float64(9), "name": "技術メモ", "slug": "技術メモ", "taxonomy": "post_tag",
		}}
		svc := NewBlogService(gw)

		tag, err := svc.GetTagBySlug(context.Background(), "技術メモ")
		require.NoError(t, err)
		assert.Equal(t, 9, tag.ID.Value())
	})

	t.Run("upstream 404 becomes ErrNotFound", func(t *testing.T) {
		gw := &stubGateway{err: &wordpress.APIError{Message: "Tag not found", Status: http.StatusNotFound}}
		svc := NewBlogService(gw)

		_, err := svc.GetTagBySlug(context.Background(), "missing")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
