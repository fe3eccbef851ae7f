package domain

import (
	"context"
	"encoding/json"
	"regexp"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLength   = 200
	maxSlugLength    = 100
	maxExcerptLength = 500
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// PostID identifies a post. Constructed only through NewPostID, which
// guarantees a positive integer.
type PostID int

func NewPostID(id int) (PostID, error) {
	if id <= 0 {
		return 0, ValidationError{Field: "PostID", Message: "must be a positive integer"}
	}
	return PostID(id), nil
}

func (id PostID) Value() int { return int(id) }

// PostTitle is a post title with markup already stripped, 1-200 characters.
type PostTitle string

func NewPostTitle(s string) (PostTitle, error) {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > maxTitleLength {
		return "", ValidationError{Field: "PostTitle", Message: "must be 1-200 characters"}
	}
	return PostTitle(s), nil
}

func (t PostTitle) String() string { return string(t) }

// PostSlug is the URL segment of a post: lowercase alphanumerics and
// hyphens, 1-100 characters.
type PostSlug string

func NewPostSlug(s string) (PostSlug, error) {
	if len(s) < 1 || len(s) > maxSlugLength || !slugPattern.MatchString(s) {
		return "", ValidationError{Field: "PostSlug", Message: "must be 1-100 lowercase alphanumeric characters or hyphens"}
	}
	return PostSlug(s), nil
}

func (s PostSlug) String() string { return string(s) }

// PostExcerpt is a short plain-text summary. Empty is allowed.
type PostExcerpt string

func NewPostExcerpt(s string) (PostExcerpt, error) {
	if utf8.RuneCountInString(s) > maxExcerptLength {
		return "", ValidationError{Field: "PostExcerpt", Message: "must be at most 500 characters"}
	}
	return PostExcerpt(s), nil
}

func (e PostExcerpt) String() string { return string(e) }

// PostDate wraps a post timestamp. WordPress reports site-local times
// without a zone as well as RFC 3339 forms; both parse.
type PostDate struct {
	t time.Time
}

var postDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func NewPostDate(s string) (PostDate, error) {
	for _, layout := range postDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return PostDate{t: t}, nil
		}
	}
	return PostDate{}, ValidationError{Field: "PostDate", Message: "must be a valid date"}
}

func NewPostDateFromTime(t time.Time) (PostDate, error) {
	if t.IsZero() {
		return PostDate{}, ValidationError{Field: "PostDate", Message: "must be a valid date"}
	}
	return PostDate{t: t}, nil
}

func (d PostDate) Time() time.Time { return d.t }

// JSON support exists so cached entities survive a round trip through
// the response cache; it is not part of the validation surface.

func (d PostDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t)
}

func (d *PostDate) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.t)
}

// Post is a blog post assembled from validated WordPress data.
// Content is the rendered HTML exactly as WordPress produced it; every
// other textual field has been stripped of markup. Posts are never
// mutated after construction.
type Post struct {
	ID            PostID
	Title         PostTitle
	Slug          PostSlug
	Excerpt       PostExcerpt
	Content       string
	CreatedAt     PostDate
	UpdatedAt     PostDate
	FeaturedImage ImageURL
	Tags          []Tag
}

// HasFeaturedImage reports whether a featured image survived mapping.
func (p Post) HasFeaturedImage() bool {
	return p.FeaturedImage != ""
}

// HasTag reports whether the post carries the given tag.
func (p Post) HasTag(id TagID) bool {
	for _, t := range p.Tags {
		if t.ID == id {
			return true
		}
	}
	return false
}

// PostReader is the read side of the blog: everything a page needs to
// render posts. Implemented by the application service and by the
// caching decorator in persistence.
type PostReader interface {
	GetPosts(ctx context.Context, page, perPage int) ([]Post, error)
	GetPostBySlug(ctx context.Context, slug string) (Post, error)
	GetPostsByTag(ctx context.Context, tagID, page, perPage int) ([]Post, error)
}
