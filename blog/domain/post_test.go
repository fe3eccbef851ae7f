package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewPostID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr bool
	}{
		{name: "positive id", id: 42, wantErr: false},
		{name: "smallest valid id", id: 1, wantErr: false},
		{name: "zero", id: 0, wantErr: true},
		{name: "negative", id: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPostID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPostID(%d) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if !tt.wantErr && got.Value() != tt.id {
				t.Errorf("NewPostID(%d).Value() = %d, want %d", tt.id, got.Value(), tt.id)
			}
		})
	}
}

func TestNewPostIDErrorMessage(t *testing.T) {
	_, err := NewPostID(0)
	if err == nil {
		t.Fatal("expected error for id 0")
	}
	if err.Error() != "invalid PostID: must be a positive integer" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestNewPostTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "single character", title: "A", wantErr: false},
		{name: "exactly 200 characters", title: strings.Repeat("a", 200), wantErr: false},
		{name: "201 characters", title: strings.Repeat("a", 201), wantErr: true},
		{name: "empty", title: "", wantErr: true},
		{name: "multibyte title", title: "日本語のタイトル", wantErr: false},
		{name: "200 multibyte characters", title: strings.Repeat("あ", 200), wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPostTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPostTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.title {
				t.Errorf("NewPostTitle(%q) = %q", tt.title, got.String())
			}
		})
	}
}

func TestNewPostSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "lowercase with hyphens and digits", slug: "test-post-123", wantErr: false},
		{name: "lowercase only", slug: "testpost", wantErr: false},
		{name: "digits only", slug: "123", wantErr: false},
		{name: "exactly 100 characters", slug: strings.Repeat("a", 100), wantErr: false},
		{name: "101 characters", slug: strings.Repeat("a", 101), wantErr: true},
		{name: "uppercase", slug: "Test-Post", wantErr: true},
		{name: "contains space", slug: "test post", wantErr: true},
		{name: "multibyte", slug: "テスト", wantErr: true},
		{name: "underscore", slug: "test_post", wantErr: true},
		{name: "empty", slug: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPostSlug(tt.slug)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPostSlug(%q) error = %v, wantErr %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestNewPostExcerpt(t *testing.T) {
	tests := []struct {
		name    string
		excerpt string
		wantErr bool
	}{
		{name: "empty is allowed", excerpt: "", wantErr: false},
		{name: "ordinary excerpt", excerpt: "a short summary", wantErr: false},
		{name: "exactly 500 characters", excerpt: strings.Repeat("a", 500), wantErr: false},
		{name: "501 characters", excerpt: strings.Repeat("a", 501), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPostExcerpt(tt.excerpt)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewPostExcerpt error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewPostDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "wordpress local time", date: "2024-01-01T00:00:00", wantErr: false},
		{name: "rfc3339", date: "2024-01-01T00:00:00Z", wantErr: false},
		{name: "space separated", date: "2024-01-01 12:30:45", wantErr: false},
		{name: "garbage", date: "not-a-date", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPostDate(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewPostDate(%q) error = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
			if !tt.wantErr && got.Time().IsZero() {
				t.Errorf("NewPostDate(%q) produced zero time", tt.date)
			}
		})
	}
}

func TestNewPostDateFromTime(t *testing.T) {
	if _, err := NewPostDateFromTime(time.Time{}); err == nil {
		t.Error("expected error for zero time")
	}
	if _, err := NewPostDateFromTime(time.Now()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPostHasTag(t *testing.T) {
	p := Post{Tags: []Tag{{ID: 1}, {ID: 3}}}
	if !p.HasTag(3) {
		t.Error("expected HasTag(3) to be true")
	}
	if p.HasTag(2) {
		t.Error("expected HasTag(2) to be false")
	}
}
