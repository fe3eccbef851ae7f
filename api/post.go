package api

import "time"

type Post struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	Tags          []Tag     `json:"tags"`
}

// PostPage is the detail-page payload: the post plus its related posts.
type PostPage struct {
	Post    Post   `json:"post"`
	Related []Post `json:"related"`
}
