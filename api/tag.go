package api

type Tag struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// TagPage is the tag-page payload: the tag plus the posts carrying it.
type TagPage struct {
	Tag   Tag    `json:"tag"`
	Posts []Post `json:"posts"`
}
