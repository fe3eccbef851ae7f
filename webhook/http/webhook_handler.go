// Package http receives revalidation webhooks from the WordPress
// on-demand-revalidation plugin and invalidates the cached content they
// name.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/api"
)

// Revalidator performs the two invalidation side effects the webhook
// triggers. Implemented by cache.Invalidator.
type Revalidator interface {
	RevalidatePath(ctx context.Context, path string) error
	RevalidateTag(ctx context.Context, tag string) error
}

// Policy is the invalidation expansion applied on top of whatever the
// caller supplied. The plugin's payloads never converged on one baseline
// set, so the baseline is configuration rather than a literal.
type Policy struct {
	// AlwaysPaths are invalidated on every accepted webhook because any
	// content change can affect the listing surfaces.
	AlwaysPaths []string
	// AlwaysTags are invalidated on every accepted webhook.
	AlwaysTags []string
	// PostPathPrefix marks individual post detail pages. Paths under it
	// are invalidated explicitly so posts outside the pre-generated set
	// still refresh.
	PostPathPrefix string
}

// DefaultPolicy matches the deployed plugin configuration.
func DefaultPolicy() Policy {
	return Policy{
		AlwaysPaths:    []string{"/blog", "/"},
		AlwaysTags:     []string{"posts", "search-index"},
		PostPathPrefix: "/blog/",
	}
}

// WebhookHandler authenticates and executes revalidation requests.
type WebhookHandler struct {
	secret      string
	policy      Policy
	revalidator Revalidator
}

func NewWebhookHandler(secret string, policy Policy, revalidator Revalidator) *WebhookHandler {
	return &WebhookHandler{
		secret:      secret,
		policy:      policy,
		revalidator: revalidator,
	}
}

func (h *WebhookHandler) RegisterRoutes(r gin.IRouter) {
	r.PUT("/api/revalidate", h.HandleRevalidate)
}

// HandleRevalidate is a single-pass state machine: authenticate, check
// the precondition, filter the inputs, expand and execute the
// invalidations, report. Steps one and two are terminal rejections; a
// failure during invalidation reports whatever already happened as a 500
// without rolling anything back.
func (h *WebhookHandler) HandleRevalidate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if h.secret == "" || authHeader != "Bearer "+h.secret {
		log.Error().Msg("Revalidation request with invalid token rejected")
		c.String(http.StatusUnauthorized, "Invalid token")
		return
	}

	paths, tags, ok := decodeBody(c)
	if !ok {
		log.Error().Msg("Revalidation request missing both paths and tags")
		c.String(http.StatusPreconditionFailed, "Precondition Failed: Missing paths and tags")
		return
	}

	// Invalid entries are dropped, not rejected.
	revalidatePaths := filterPaths(paths)
	correctTags := filterStrings(tags)

	allPaths, allTags, err := h.expand(c.Request.Context(), revalidatePaths, correctTags)
	if err != nil {
		log.Error().Err(err).Msg("Revalidation failed")
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	message := fmt.Sprintf(
		"Paths and tags revalidated: %s and %s",
		strings.Join(allPaths, ", "),
		strings.Join(allTags, ", "),
	)
	log.Info().Strs("paths", allPaths).Strs("tags", allTags).Msg("Revalidated")

	c.JSON(http.StatusOK, api.RevalidateResponse{
		Revalidated: true,
		Message:     message,
	})
}

// expand performs the invalidations: the caller's entries, the baseline
// sets minus duplicates, and an explicit pass over individual post
// detail paths. Returns the full invalidated sets for reporting.
func (h *WebhookHandler) expand(ctx context.Context, paths, tags []string) ([]string, []string, error) {
	for _, path := range paths {
		if err := h.revalidator.RevalidatePath(ctx, path); err != nil {
			return nil, nil, err
		}
	}
	for _, tag := range tags {
		if err := h.revalidator.RevalidateTag(ctx, tag); err != nil {
			return nil, nil, err
		}
	}

	allPaths := append([]string{}, paths...)
	for _, path := range h.policy.AlwaysPaths {
		if contains(paths, path) {
			continue
		}
		if err := h.revalidator.RevalidatePath(ctx, path); err != nil {
			return nil, nil, err
		}
		allPaths = append(allPaths, path)
	}

	allTags := append([]string{}, tags...)
	for _, tag := range h.policy.AlwaysTags {
		if contains(tags, tag) {
			continue
		}
		if err := h.revalidator.RevalidateTag(ctx, tag); err != nil {
			return nil, nil, err
		}
		allTags = append(allTags, tag)
	}

	// Individual post pages get one more explicit pass so detail pages
	// outside the pre-generated static set still refresh.
	for _, path := range paths {
		if h.isPostPath(path) {
			if err := h.revalidator.RevalidatePath(ctx, path); err != nil {
				return nil, nil, err
			}
		}
	}

	return allPaths, allTags, nil
}

func (h *WebhookHandler) isPostPath(path string) bool {
	prefix := h.policy.PostPathPrefix
	if prefix == "" {
		return false
	}
	return strings.HasPrefix(path, prefix) && path != strings.TrimSuffix(prefix, "/")
}

// decodeBody extracts the paths and tags lists. The third return is
// false when neither key is present, which includes an unreadable body.
// List entries stay untyped here; filtering happens later.
func decodeBody(c *gin.Context) ([]any, []any, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, nil, false
	}

	rawPaths, hasPaths := body["paths"]
	rawTags, hasTags := body["tags"]
	// An explicit null is the same as an absent key.
	hasPaths = hasPaths && string(rawPaths) != "null"
	hasTags = hasTags && string(rawTags) != "null"
	if !hasPaths && !hasTags {
		return nil, nil, false
	}

	var paths, tags []any
	if hasPaths {
		if err := json.Unmarshal(rawPaths, &paths); err != nil {
			paths = nil
		}
	}
	if hasTags {
		if err := json.Unmarshal(rawTags, &tags); err != nil {
			tags = nil
		}
	}
	return paths, tags, true
}

func filterPaths(entries []any) []string {
	paths := []string{}
	for _, entry := range entries {
		s, ok := entry.(string)
		if !ok || !strings.HasPrefix(s, "/") {
			continue
		}
		paths = append(paths, s)
	}
	return paths
}

func filterStrings(entries []any) []string {
	out := []string{}
	for _, entry := range entries {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
