package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/api"
	"github.com/karasuno/wpfront/blog/domain"
)

const defaultTagPerPage = 100

func (a *API) GetTags(c *gin.Context) {
	perPage := intQuery(c, "per_page", defaultTagPerPage)

	tags, err := a.tags.GetTags(c.Request.Context(), perPage)
	if err != nil {
		handleError(c, err)
		return
	}

	out := make([]api.Tag, 0, len(tags))
	for _, t := range tags {
		out = append(out, toAPITag(t))
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) GetTag(c *gin.Context) {
	tag, err := a.tags.GetTagBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPITag(tag))
}

func (a *API) GetTagPosts(c *gin.Context) {
	slug := c.Param("slug")
	page := intQuery(c, "page", defaultPage)
	perPage := intQuery(c, "per_page", defaultPerPage)

	tag, err := a.tags.GetTagBySlug(c.Request.Context(), slug)
	if err != nil {
		handleError(c, err)
		return
	}

	posts, err := a.posts.GetPostsByTag(c.Request.Context(), tag.ID.Value(), page, perPage)
	if err != nil {
		handleError(c, err)
		return
	}

	// Some installs intermittently return no rows for a tag query even
	// though tagged posts exist. Fall back to filtering the full list by
	// tag id or slug before reporting an empty page.
	if len(posts) == 0 {
		posts = a.tagPostsFallback(c, tag)
	}

	c.JSON(http.StatusOK, api.TagPage{
		Tag:   toAPITag(tag),
		Posts: toAPIPosts(posts),
	})
}

func (a *API) tagPostsFallback(c *gin.Context, tag domain.Tag) []domain.Post {
	all, err := a.posts.GetPosts(c.Request.Context(), defaultPage, maxPerPage)
	if err != nil {
		log.Warn().Err(err).Str("tag", tag.Slug.String()).Msg("Tag posts fallback fetch failed")
		return nil
	}

	matched := []domain.Post{}
	for _, post := range all {
		for _, t := range post.Tags {
			if t.ID == tag.ID || t.Slug == tag.Slug {
				matched = append(matched, post)
				break
			}
		}
	}
	return matched
}
