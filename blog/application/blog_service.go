package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/wordpress"
)

const (
	defaultPage        = 1
	defaultPostPerPage = 10
	defaultTagPerPage  = 100
)

// Gateway is the outbound WordPress surface the service composes over.
// Implemented by shared/wordpress.Gateway; payloads are decoded but
// unvalidated JSON.
type Gateway interface {
	GetPosts(ctx context.Context, page, perPage int) (any, error)
	GetPostsByTag(ctx context.Context, tagID, page, perPage int) (any, error)
	GetPostBySlug(ctx context.Context, slug string) (any, error)
	GetTags(ctx context.Context, perPage int) (any, error)
	GetTagBySlug(ctx context.Context, slug string) (any, error)
}

// BlogService composes the gateway, the schema validator and the domain
// mapper behind simple query methods. Every method short-circuits on the
// first failing stage: gateway failures come back as domain.NetworkError
// (or domain.ErrNotFound for upstream 404s) and validation or mapping
// failures come back as domain.ValidationError.
type BlogService struct {
	gw Gateway
}

func NewBlogService(gw Gateway) *BlogService {
	return &BlogService{gw: gw}
}

// GetPosts returns one page of published posts, newest first.
func (s *BlogService) GetPosts(ctx context.Context, page, perPage int) ([]domain.Post, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPostPerPage
	}

	raw, err := s.gw.GetPosts(ctx, page, perPage)
	if err != nil {
		return nil, adaptGatewayError(err)
	}
	validated, err := ValidatePosts(raw)
	if err != nil {
		return nil, err
	}
	return MapPosts(validated)
}

// GetPostBySlug returns the single post with the given slug, or an error
// wrapping domain.ErrNotFound when no such post exists.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	raw, err := s.gw.GetPostBySlug(ctx, slug)
	if err != nil {
		return domain.Post{}, adaptGatewayError(err)
	}
	validated, err := ValidatePost(raw)
	if err != nil {
		return domain.Post{}, err
	}
	return MapPost(validated)
}

// GetPostsByTag returns one page of posts carrying the given tag.
func (s *BlogService) GetPostsByTag(ctx context.Context, tagID, page, perPage int) ([]domain.Post, error) {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPostPerPage
	}

	raw, err := s.gw.GetPostsByTag(ctx, tagID, page, perPage)
	if err != nil {
		return nil, adaptGatewayError(err)
	}
	validated, err := ValidatePosts(raw)
	if err != nil {
		return nil, err
	}
	return MapPosts(validated)
}

// GetTags returns up to perPage tags.
func (s *BlogService) GetTags(ctx context.Context, perPage int) ([]domain.Tag, error) {
	if perPage < 1 {
		perPage = defaultTagPerPage
	}

	raw, err := s.gw.GetTags(ctx, perPage)
	if err != nil {
		return nil, adaptGatewayError(err)
	}
	validated, err := ValidateTags(raw)
	if err != nil {
		return nil, err
	}
	return MapTags(validated)
}

// GetTagBySlug returns the single tag with the given slug, or an error
// wrapping domain.ErrNotFound when no such tag exists.
func (s *BlogService) GetTagBySlug(ctx context.Context, slug string) (domain.Tag, error) {
	raw, err := s.gw.GetTagBySlug(ctx, slug)
	if err != nil {
		return domain.Tag{}, adaptGatewayError(err)
	}
	validated, err := ValidateTag(raw)
	if err != nil {
		return domain.Tag{}, err
	}
	return MapTag(validated)
}

// adaptGatewayError flattens a gateway failure into the application error
// taxonomy. An upstream 404 is a domain condition, not a network fault.
func adaptGatewayError(err error) error {
	var apiErr *wordpress.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return fmt.Errorf("%s: %w", apiErr.Message, domain.ErrNotFound)
	}
	log.Warn().Err(err).Msg("WordPress gateway call failed")
	return domain.NetworkError{Err: err}
}
