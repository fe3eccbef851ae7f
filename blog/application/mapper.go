package application

import (
	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/wordpress"
)

const postTagTaxonomy = "post_tag"

// MapPost converts one validated WordPress post into a domain Post. The
// first failing required field fails the whole mapping; no partial Post
// is ever produced. Two degradations are deliberate: a featured image
// whose URL does not validate is dropped rather than failing the post,
// and an embedded term that fails tag mapping is dropped from the tag
// list rather than failing the post.
func MapPost(wp wordpress.Post) (domain.Post, error) {
	id, err := domain.NewPostID(wp.ID)
	if err != nil {
		return domain.Post{}, err
	}
	title, err := domain.NewPostTitle(stripHTML(wp.Title.Rendered))
	if err != nil {
		return domain.Post{}, err
	}
	slug, err := domain.NewPostSlug(wp.Slug)
	if err != nil {
		return domain.Post{}, err
	}
	excerpt, err := domain.NewPostExcerpt(stripHTML(wp.Excerpt.Rendered))
	if err != nil {
		return domain.Post{}, err
	}
	createdAt, err := domain.NewPostDate(wp.Date)
	if err != nil {
		return domain.Post{}, err
	}
	updatedAt, err := domain.NewPostDate(wp.Modified)
	if err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:        id,
		Title:     title,
		Slug:      slug,
		Excerpt:   excerpt,
		Content:   wp.Content.Rendered,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		Tags:      []domain.Tag{},
	}

	if wp.Embedded != nil {
		post.FeaturedImage = featuredImage(wp.Embedded.FeaturedMedia)
		post.Tags = embeddedTags(wp.Embedded.Terms)
	}

	return post, nil
}

// MapPosts maps a batch of posts with first-failure semantics: one bad
// post fails the whole batch, unlike the per-post tag handling.
func MapPosts(wps []wordpress.Post) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(wps))
	for _, wp := range wps {
		post, err := MapPost(wp)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// MapTag converts one validated WordPress term into a domain Tag. An
// absent count defaults to zero.
func MapTag(term wordpress.Term) (domain.Tag, error) {
	id, err := domain.NewTagID(term.ID)
	if err != nil {
		return domain.Tag{}, err
	}
	name, err := domain.NewTagName(term.Name)
	if err != nil {
		return domain.Tag{}, err
	}
	slug, err := domain.NewTagSlug(term.Slug)
	if err != nil {
		return domain.Tag{}, err
	}
	count := 0
	if term.Count != nil {
		count = *term.Count
	}
	tagCount, err := domain.NewTagCount(count)
	if err != nil {
		return domain.Tag{}, err
	}

	return domain.Tag{ID: id, Name: name, Slug: slug, Count: tagCount}, nil
}

// MapTags maps a batch of terms with the same first-failure semantics as
// MapPosts.
func MapTags(terms []wordpress.Term) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(terms))
	for _, term := range terms {
		tag, err := MapTag(term)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func featuredImage(media []wordpress.Media) domain.ImageURL {
	if len(media) == 0 {
		return ""
	}
	img, err := domain.NewImageURL(media[0].SourceURL)
	if err != nil {
		return ""
	}
	return img
}

// embeddedTags flattens the taxonomy groups in source order, keeps only
// post_tag terms and silently drops any term that fails tag mapping.
func embeddedTags(groups [][]wordpress.Term) []domain.Tag {
	tags := []domain.Tag{}
	for _, group := range groups {
		for _, term := range group {
			if term.Taxonomy != postTagTaxonomy {
				continue
			}
			tag, err := MapTag(term)
			if err != nil {
				continue
			}
			tags = append(tags, tag)
		}
	}
	return tags
}
