// Package wordpress issues requests against the WordPress REST API and
// adapts transport failures into *APIError values. It deliberately
// returns decoded-but-unvalidated JSON: structural validation is a
// separate stage owned by the application layer.
package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/karasuno/wpfront/shared/httpclient"
)

// APIError is a failed WordPress API exchange. Status carries the
// upstream HTTP status, or a synthetic one for transport failures and
// domain-level not-found results.
type APIError struct {
	Message string
	Status  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress: %s (status %d)", e.Message, e.Status)
}

// Gateway fetches posts and tags from a WordPress origin.
type Gateway struct {
	client  *httpclient.Client
	baseURL string
}

// NewGateway creates a Gateway against the given origin base URL.
func NewGateway(client *httpclient.Client, baseURL string) *Gateway {
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetPosts fetches one page of posts. Embedded media and terms are always
// requested so the mapper can resolve featured images and tags.
func (g *Gateway) GetPosts(ctx context.Context, page, perPage int) (any, error) {
	op := fmt.Sprintf("listing posts (page %d)", page)
	u := fmt.Sprintf("%s/wp-json/wp/v2/posts?page=%d&per_page=%d&_embed=true", g.baseURL, page, perPage)
	resp, err := g.client.GetJSON(ctx, u)
	if err != nil {
		return nil, handleHTTPError(op, err)
	}
	return resp.Data, nil
}

// GetPostsByTag fetches one page of posts carrying the given tag id.
func (g *Gateway) GetPostsByTag(ctx context.Context, tagID, page, perPage int) (any, error) {
	op := fmt.Sprintf("listing posts for tag %d", tagID)
	u := fmt.Sprintf("%s/wp-json/wp/v2/posts?tags=%d&page=%d&per_page=%d&_embed=true", g.baseURL, tagID, page, perPage)
	resp, err := g.client.GetJSON(ctx, u)
	if err != nil {
		return nil, handleHTTPError(op, err)
	}
	return resp.Data, nil
}

// GetPostBySlug fetches the single post with the given slug. A zero-length
// result is a not-found failure, not a transport error.
func (g *Gateway) GetPostBySlug(ctx context.Context, slug string) (any, error) {
	op := fmt.Sprintf("getting post %q", slug)
	u := fmt.Sprintf("%s/wp-json/wp/v2/posts?slug=%s&_embed=true", g.baseURL, url.QueryEscape(slug))
	resp, err := g.client.GetJSON(ctx, u)
	if err != nil {
		return nil, handleHTTPError(op, err)
	}

	items, ok := resp.Data.([]any)
	if !ok {
		return nil, &APIError{Message: op + " returned an unexpected shape", Status: http.StatusInternalServerError}
	}
	if len(items) == 0 {
		return nil, &APIError{Message: "Post not found", Status: http.StatusNotFound}
	}
	return items[0], nil
}

// GetTags fetches up to perPage tags.
func (g *Gateway) GetTags(ctx context.Context, perPage int) (any, error) {
	op := "listing tags"
	u := fmt.Sprintf("%s/wp-json/wp/v2/tags?per_page=%d&_embed=true", g.baseURL, perPage)
	resp, err := g.client.GetJSON(ctx, u)
	if err != nil {
		return nil, handleHTTPError(op, err)
	}
	return resp.Data, nil
}

// GetTagBySlug fetches the single tag with the given slug. Some WordPress
// installs store multibyte slugs percent-encoded and some store them raw,
// so the encoded lookup is tried first and the raw form is retried when
// the encoded one matches nothing.
func (g *Gateway) GetTagBySlug(ctx context.Context, slug string) (any, error) {
	op := fmt.Sprintf("getting tag %q", slug)

	encoded := url.QueryEscape(slug)
	items, err := g.fetchTagList(ctx, op, encoded)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && encoded != slug {
		items, err = g.fetchTagList(ctx, op, slug)
		if err != nil {
			return nil, err
		}
	}
	if len(items) == 0 {
		return nil, &APIError{Message: "Tag not found", Status: http.StatusNotFound}
	}
	return items[0], nil
}

func (g *Gateway) fetchTagList(ctx context.Context, op, slug string) ([]any, error) {
	u := fmt.Sprintf("%s/wp-json/wp/v2/tags?slug=%s", g.baseURL, slug)
	resp, err := g.client.GetJSON(ctx, u)
	if err != nil {
		return nil, handleHTTPError(op, err)
	}
	items, ok := resp.Data.([]any)
	if !ok {
		return nil, &APIError{Message: op + " returned an unexpected shape", Status: http.StatusInternalServerError}
	}
	return items, nil
}

// handleHTTPError adapts a client error into a structured *APIError.
func handleHTTPError(op string, err error) error {
	var httpErr *httpclient.Error
	if errors.As(err, &httpErr) {
		return &APIError{
			Message: fmt.Sprintf("%s failed: %s", op, httpErr.Message),
			Status:  httpErr.Status,
		}
	}
	return &APIError{
		Message: fmt.Sprintf("%s failed: %v", op, err),
		Status:  http.StatusInternalServerError,
	}
}
