package wordpress

// Raw WordPress REST shapes. These are boundary-only types: they are
// produced by the schema validator from untrusted JSON and consumed by
// the domain mapper, and never travel further into the application.

// Rendered is WordPress's wrapper around server-rendered HTML fields.
type Rendered struct {
	Rendered string
}

// Post is the raw representation of a post as returned by
// /wp-json/wp/v2/posts with _embed=true.
type Post struct {
	ID            int
	Slug          string
	Title         Rendered
	Content       Rendered
	Excerpt       Rendered
	Date          string
	Modified      string
	FeaturedMedia int
	TagIDs        []int
	Embedded      *Embedded
}

// Embedded carries the _embedded relations requested via _embed=true.
// Terms is an array of taxonomy groups, each group an array of terms.
type Embedded struct {
	FeaturedMedia []Media
	Terms         [][]Term
}

// Media is an embedded wp:featuredmedia entry.
type Media struct {
	SourceURL string
}

// Term is an embedded wp:term entry or a row from /wp-json/wp/v2/tags.
// Count is nil when the API omitted it.
type Term struct {
	ID       int
	Name     string
	Slug     string
	Taxonomy string
	Count    *int
}
