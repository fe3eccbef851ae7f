package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/api"
	"github.com/karasuno/wpfront/blog/application"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100

	// relatedPoolSize bounds how many posts are fetched to pick related
	// posts from.
	relatedPoolSize = 100
)

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func (a *API) GetPosts(c *gin.Context) {
	page := intQuery(c, "page", defaultPage)
	perPage := intQuery(c, "per_page", defaultPerPage)
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	posts, err := a.posts.GetPosts(c.Request.Context(), page, perPage)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIPosts(posts))
}

func (a *API) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := a.posts.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		handleError(c, err)
		return
	}

	// Related posts are best-effort: a failure here degrades the page
	// section instead of failing the whole post.
	related := []api.Post{}
	all, err := a.posts.GetPosts(c.Request.Context(), defaultPage, relatedPoolSize)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("Failed to fetch posts for related selection")
	} else {
		related = toAPIPosts(application.RelatedPosts(post, all, application.DefaultRelatedCount))
	}

	c.JSON(http.StatusOK, api.PostPage{
		Post:    toAPIPost(post),
		Related: related,
	})
}
