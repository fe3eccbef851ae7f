// Package rest exposes the blog read model as JSON. This is the
// rendering boundary: typed domain failures stop here and become HTTP
// statuses.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/api"
	"github.com/karasuno/wpfront/blog/domain"
)

type API struct {
	posts domain.PostReader
	tags  domain.TagReader
}

func NewAPI(posts domain.PostReader, tags domain.TagReader) *API {
	return &API{posts: posts, tags: tags}
}

func (a *API) RegisterRoutes(router gin.IRouter) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/posts", a.GetPosts)
		v1.GET("/posts/:slug", a.GetPost)
		v1.GET("/tags", a.GetTags)
		v1.GET("/tags/:slug", a.GetTag)
		v1.GET("/tags/:slug/posts", a.GetTagPosts)
	}
}

// handleError converts a domain failure into the boundary response: a
// missing entity is 404, everything else is the generic error page.
func handleError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func toAPIPost(p domain.Post) api.Post {
	tags := make([]api.Tag, 0, len(p.Tags))
	for _, t := range p.Tags {
		tags = append(tags, toAPITag(t))
	}
	return api.Post{
		ID:            p.ID.Value(),
		Title:         p.Title.String(),
		Slug:          p.Slug.String(),
		Excerpt:       p.Excerpt.String(),
		Content:       p.Content,
		CreatedAt:     p.CreatedAt.Time(),
		UpdatedAt:     p.UpdatedAt.Time(),
		FeaturedImage: p.FeaturedImage.String(),
		Tags:          tags,
	}
}

func toAPIPosts(posts []domain.Post) []api.Post {
	out := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, toAPIPost(p))
	}
	return out
}

func toAPITag(t domain.Tag) api.Tag {
	return api.Tag{
		ID:    t.ID.Value(),
		Name:  t.Name.String(),
		Slug:  t.Slug.String(),
		Count: t.Count.Value(),
	}
}
