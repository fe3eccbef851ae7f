package application

import (
	"fmt"
	"math"
	"strings"

	"github.com/karasuno/wpfront/blog/domain"
	"github.com/karasuno/wpfront/shared/wordpress"
)

// Structural validation of raw WordPress JSON. Runs before the domain
// mapper: this stage only answers "is the shape right", never "does the
// value satisfy a domain constraint". JSON numbers arrive as float64, so
// integer fields accept exactly the float64 values with no fractional
// part; a numeric-looking string is never accepted.

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func invalidField(entity, field string) error {
	return domain.ValidationError{
		Field:   entity,
		Message: fmt.Sprintf("missing or invalid field: %s", field),
	}
}

// ValidatePost checks that data has the shape of a WordPress post:
// required id, slug, title.rendered, content.rendered, excerpt.rendered,
// date and modified, with optional featured_media, tags and _embedded.
// Optional fields may be entirely absent, but when present they must have
// the right type.
func ValidatePost(data any) (wordpress.Post, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return wordpress.Post{}, domain.ValidationError{Field: "post", Message: "must be an object"}
	}

	var p wordpress.Post

	if p.ID, ok = asInt(m["id"]); !ok {
		return wordpress.Post{}, invalidField("post", "id")
	}
	if p.Slug, ok = asString(m["slug"]); !ok {
		return wordpress.Post{}, invalidField("post", "slug")
	}

	var err error
	if p.Title, err = renderedField(m, "title"); err != nil {
		return wordpress.Post{}, err
	}
	if p.Content, err = renderedField(m, "content"); err != nil {
		return wordpress.Post{}, err
	}
	if p.Excerpt, err = renderedField(m, "excerpt"); err != nil {
		return wordpress.Post{}, err
	}

	if p.Date, ok = asString(m["date"]); !ok {
		return wordpress.Post{}, invalidField("post", "date")
	}
	if p.Modified, ok = asString(m["modified"]); !ok {
		return wordpress.Post{}, invalidField("post", "modified")
	}

	if v, present := m["featured_media"]; present {
		if p.FeaturedMedia, ok = asInt(v); !ok {
			return wordpress.Post{}, invalidField("post", "featured_media")
		}
	}
	if v, present := m["tags"]; present {
		if p.TagIDs, err = intList(v); err != nil {
			return wordpress.Post{}, invalidField("post", "tags")
		}
	}
	if v, present := m["_embedded"]; present {
		if p.Embedded, err = validateEmbedded(v); err != nil {
			return wordpress.Post{}, err
		}
	}

	return p, nil
}

// ValidatePosts validates a batch of posts. A non-array input fails
// immediately without inspecting elements; otherwise the batch is
// all-or-nothing, with element failures aggregated into one message.
func ValidatePosts(data any) ([]wordpress.Post, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, domain.ValidationError{Field: "posts", Message: "Posts must be an array"}
	}

	posts := make([]wordpress.Post, 0, len(items))
	var messages []string
	for _, item := range items {
		p, err := ValidatePost(item)
		if err != nil {
			messages = append(messages, err.Error())
			continue
		}
		posts = append(posts, p)
	}
	if len(messages) > 0 {
		return nil, domain.ValidationError{Field: "posts", Message: strings.Join(messages, ", ")}
	}
	return posts, nil
}

// ValidateFields checks only the presence of the given top-level fields,
// not their types. Call sites use it to assert stronger requirements than
// ValidatePost's defaults, such as requiring _embedded for a rendering
// path. All missing names are reported at once.
func ValidateFields(data any, required []string) (map[string]any, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return nil, domain.ValidationError{Field: "post", Message: "must be an object"}
	}

	var missing []string
	for _, field := range required {
		if _, present := m[field]; !present {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, domain.ValidationError{
			Field:   "post",
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}
	}
	return m, nil
}

// ValidateTag checks that data has the shape of a WordPress tag row.
func ValidateTag(data any) (wordpress.Term, error) {
	m, ok := data.(map[string]any)
	if !ok {
		return wordpress.Term{}, domain.ValidationError{Field: "tag", Message: "must be an object"}
	}
	return validateTerm(m, "tag")
}

// ValidateTags validates a batch of tags with the same all-or-nothing
// semantics as ValidatePosts.
func ValidateTags(data any) ([]wordpress.Term, error) {
	items, ok := data.([]any)
	if !ok {
		return nil, domain.ValidationError{Field: "tags", Message: "Tags must be an array"}
	}

	terms := make([]wordpress.Term, 0, len(items))
	var messages []string
	for _, item := range items {
		term, err := ValidateTag(item)
		if err != nil {
			messages = append(messages, err.Error())
			continue
		}
		terms = append(terms, term)
	}
	if len(messages) > 0 {
		return nil, domain.ValidationError{Field: "tags", Message: strings.Join(messages, ", ")}
	}
	return terms, nil
}

func renderedField(m map[string]any, key string) (wordpress.Rendered, error) {
	obj, ok := m[key].(map[string]any)
	if !ok {
		return wordpress.Rendered{}, invalidField("post", key+".rendered")
	}
	s, ok := asString(obj["rendered"])
	if !ok {
		return wordpress.Rendered{}, invalidField("post", key+".rendered")
	}
	return wordpress.Rendered{Rendered: s}, nil
}

func intList(v any) ([]int, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("not an array")
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, fmt.Errorf("not an integer")
		}
		out = append(out, n)
	}
	return out, nil
}

func validateEmbedded(v any) (*wordpress.Embedded, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidField("post", "_embedded")
	}

	emb := &wordpress.Embedded{}

	if raw, present := m["wp:featuredmedia"]; present {
		items, ok := raw.([]any)
		if !ok {
			return nil, invalidField("post", "_embedded.wp:featuredmedia")
		}
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			// A media entry without a usable source_url degrades the
			// featured image, never the post.
			src, _ := asString(entry["source_url"])
			emb.FeaturedMedia = append(emb.FeaturedMedia, wordpress.Media{SourceURL: src})
		}
	}

	if raw, present := m["wp:term"]; present {
		groups, ok := raw.([]any)
		if !ok {
			return nil, invalidField("post", "_embedded.wp:term")
		}
		for _, rawGroup := range groups {
			groupItems, ok := rawGroup.([]any)
			if !ok {
				return nil, invalidField("post", "_embedded.wp:term")
			}
			group := make([]wordpress.Term, 0, len(groupItems))
			for _, item := range groupItems {
				termMap, ok := item.(map[string]any)
				if !ok {
					return nil, invalidField("post", "_embedded.wp:term")
				}
				term, err := validateTerm(termMap, "post")
				if err != nil {
					return nil, invalidField("post", "_embedded.wp:term")
				}
				group = append(group, term)
			}
			emb.Terms = append(emb.Terms, group)
		}
	}

	return emb, nil
}

func validateTerm(m map[string]any, entity string) (wordpress.Term, error) {
	var term wordpress.Term
	var ok bool

	if term.ID, ok = asInt(m["id"]); !ok {
		return wordpress.Term{}, invalidField(entity, "id")
	}
	if term.Name, ok = asString(m["name"]); !ok {
		return wordpress.Term{}, invalidField(entity, "name")
	}
	if term.Slug, ok = asString(m["slug"]); !ok {
		return wordpress.Term{}, invalidField(entity, "slug")
	}
	if term.Taxonomy, ok = asString(m["taxonomy"]); !ok {
		return wordpress.Term{}, invalidField(entity, "taxonomy")
	}
	if v, present := m["count"]; present {
		n, ok := asInt(v)
		if !ok {
			return wordpress.Term{}, invalidField(entity, "count")
		}
		term.Count = &n
	}

	return term, nil
}
