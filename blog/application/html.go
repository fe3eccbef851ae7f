package application

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes every element and attribute, leaving text content.
var stripPolicy = bluemonday.StrictPolicy()

// stripHTML reduces rendered WordPress markup to plain text. The
// sanitizer entity-escapes the surviving text, so the result is unescaped
// afterwards to get literal characters back.
func stripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}
