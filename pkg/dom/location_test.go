package dom

import (
	"net/url"
	"testing"
)

func TestLocationFromURL(t *testing.T) {
	tests := []struct {
		href string
		want DocumentLocation
	}{
		{
			href: "https://example.com/a/b?x=1#frag",
			want: DocumentLocation{
				Href:     "https://example.com/a/b?x=1#frag",
				Origin:   "https://example.com",
				Pathname: "/a/b",
				Search:   "?x=1",
				Hash:     "#frag",
			},
		},
		{
			href: "http://app.test/index.html#/users?page=2#bio",
			want: DocumentLocation{
				Href:     "http://app.test/index.html#/users?page=2#bio",
				Origin:   "http://app.test",
				Pathname: "/index.html",
				Hash:     "#/users?page=2#bio",
			},
		},
		{
			href: "http://app.test/#a b",
			want: DocumentLocation{
				Href:     "http://app.test/#a%20b",
				Origin:   "http://app.test",
				Pathname: "/",
				Hash:     "#a%20b",
			},
		},
		{
			href: "http://Example.COM:80",
			want: DocumentLocation{
				Href:     "http://example.com/",
				Origin:   "http://example.com",
				Pathname: "/",
			},
		},
		{
			href: "http://localhost:3000/app?#",
			want: DocumentLocation{
				Href:     "http://localhost:3000/app",
				Origin:   "http://localhost:3000",
				Pathname: "/app",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			u, err := url.Parse(tt.href)
			if err != nil {
				t.Fatal(err)
			}
			if got := LocationFromURL(u); got != tt.want {
				t.Errorf("LocationFromURL() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFragment(t *testing.T) {
	tests := []struct {
		name string
		url  *url.URL
		want string
	}{
		{"nested hash", &url.URL{Fragment: "/docs?x=1#sec"}, "/docs?x=1#sec"},
		{"raw kept", &url.URL{Fragment: "a#b", RawFragment: "a#b"}, "a#b"},
		{"raw with escapes", &url.URL{Fragment: "a b", RawFragment: "a%20b"}, "a%20b"},
		{"stale raw", &url.URL{Fragment: "x", RawFragment: "y"}, "x"},
		{"percent", &url.URL{Fragment: "100%"}, "100%25"},
		{"non-ascii", &url.URL{Fragment: "é"}, "%C3%A9"},
		{"quotes", &url.URL{Fragment: `"<x>"`}, "%22%3Cx%3E%22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fragment(tt.url); got != tt.want {
				t.Errorf("Fragment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOrigin(t *testing.T) {
	tests := map[string]string{
		"https://example.com:443/x":  "https://example.com",
		"https://example.com:8443":   "https://example.com:8443",
		"/relative":                  "null",
		"mailto:someone@example.com": "null",
	}
	for href, want := range tests {
		u, err := url.Parse(href)
		if err != nil {
			t.Fatal(err)
		}
		if got := Origin(u); got != want {
			t.Errorf("Origin(%q) = %q, want %q", href, got, want)
		}
	}
}
