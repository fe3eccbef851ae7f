package domain

import "testing"

func TestNewImageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https url", url: "https://example.com/image.jpg", wantErr: false},
		{name: "http url", url: "http://example.com/image.jpg", wantErr: false},
		{name: "url with query and fragment", url: "https://example.com/a/b.jpg?w=100#top", wantErr: false},
		{name: "relative path", url: "/image.jpg", wantErr: true},
		{name: "no scheme", url: "example.com/image.jpg", wantErr: true},
		{name: "unsupported scheme", url: "ftp://example.com/image.jpg", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestNewGitHubURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "repository url", url: "https://github.com/user/repo", wantErr: false},
		{name: "deep link", url: "https://github.com/user/repo/tree/main", wantErr: false},
		{name: "http github", url: "http://github.com/user/repo", wantErr: true},
		{name: "other host", url: "https://example.com", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGitHubURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewGitHubURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestNewLiveURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{name: "https url", url: "https://example.com", wantErr: false},
		{name: "http url", url: "http://example.com", wantErr: false},
		{name: "relative", url: "/about", wantErr: true},
		{name: "empty", url: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLiveURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLiveURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
