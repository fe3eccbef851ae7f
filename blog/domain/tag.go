package domain

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	maxTagNameLength = 50
	maxTagSlugLength = 200
)

// TagID identifies a tag. Positive integer, same rules as PostID.
type TagID int

func NewTagID(id int) (TagID, error) {
	if id <= 0 {
		return 0, ValidationError{Field: "TagID", Message: "must be a positive integer"}
	}
	return TagID(id), nil
}

func (id TagID) Value() int { return int(id) }

// TagName is a display name, 1-50 characters.
type TagName string

func NewTagName(s string) (TagName, error) {
	n := utf8.RuneCountInString(s)
	if n < 1 || n > maxTagNameLength {
		return "", ValidationError{Field: "TagName", Message: "must be 1-50 characters"}
	}
	return TagName(s), nil
}

func (n TagName) String() string { return string(n) }

// TagSlug is the URL segment of a tag. Unlike PostSlug, WordPress stores
// tag slugs in whatever form the author typed them, so unicode and spaces
// are allowed. The value is trimmed and kept raw; percent-encoding is a
// transport concern handled by the gateway.
type TagSlug string

func NewTagSlug(s string) (TagSlug, error) {
	trimmed := strings.TrimSpace(s)
	n := utf8.RuneCountInString(trimmed)
	if n < 1 || n > maxTagSlugLength {
		return "", ValidationError{Field: "TagSlug", Message: "must be 1-200 characters after trimming"}
	}
	return TagSlug(trimmed), nil
}

func (s TagSlug) String() string { return string(s) }

// TagCount is the number of published posts carrying a tag.
type TagCount int

func NewTagCount(n int) (TagCount, error) {
	if n < 0 {
		return 0, ValidationError{Field: "TagCount", Message: "must be a non-negative integer"}
	}
	return TagCount(n), nil
}

func (c TagCount) Value() int { return int(c) }

// Tag is a taxonomy term assembled from validated WordPress data, either
// from a direct tag fetch or from a post's embedded term list.
type Tag struct {
	ID    TagID
	Name  TagName
	Slug  TagSlug
	Count TagCount
}

// TagReader is the read side of the tag taxonomy.
type TagReader interface {
	GetTags(ctx context.Context, perPage int) ([]Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (Tag, error)
}
