package domain

import (
	"net/url"
	"strings"
)

const githubPrefix = "https://github.com/"

func isAbsoluteHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ImageURL is an absolute http(s) URL pointing at an image asset.
type ImageURL string

func NewImageURL(s string) (ImageURL, error) {
	if s == "" {
		return "", ValidationError{Field: "ImageURL", Message: "must be a non-empty string"}
	}
	if !isAbsoluteHTTPURL(s) {
		return "", ValidationError{Field: "ImageURL", Message: "must be a valid URL"}
	}
	return ImageURL(s), nil
}

func (u ImageURL) String() string { return string(u) }

// GitHubURL is a link to a repository or profile on github.com.
type GitHubURL string

func NewGitHubURL(s string) (GitHubURL, error) {
	if s == "" {
		return "", ValidationError{Field: "GitHubURL", Message: "must be a non-empty string"}
	}
	if !strings.HasPrefix(s, githubPrefix) || !isAbsoluteHTTPURL(s) {
		return "", ValidationError{Field: "GitHubURL", Message: "must start with https://github.com/"}
	}
	return GitHubURL(s), nil
}

func (u GitHubURL) String() string { return string(u) }

// LiveURL is an absolute http(s) URL to a deployed project.
type LiveURL string

func NewLiveURL(s string) (LiveURL, error) {
	if s == "" {
		return "", ValidationError{Field: "LiveURL", Message: "must be a non-empty string"}
	}
	if !isAbsoluteHTTPURL(s) {
		return "", ValidationError{Field: "LiveURL", Message: "must be a valid URL"}
	}
	return LiveURL(s), nil
}

func (u LiveURL) String() string { return string(u) }
