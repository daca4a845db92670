package dom

import (
	"net/url"
	"strings"
)

// DocumentLocation mirrors the fields of a browser's document.location.
// Search and Hash include their "?" and "#" prefixes and are empty when the
// URL has no query or fragment.
type DocumentLocation struct {
	Href     string
	Origin   string
	Pathname string
	Search   string
	Hash     string
}

// Window is the host environment navigation code reads from.
type Window interface {
	EventTarget

	// Location returns a snapshot of the current document location.
	Location() DocumentLocation
}

// LocationFromURL builds a DocumentLocation from an absolute URL.
func LocationFromURL(u *url.URL) DocumentLocation {
	n := Normalize(u)

	loc := DocumentLocation{
		Href:     Href(n),
		Origin:   Origin(n),
		Pathname: n.EscapedPath(),
	}
	if n.RawQuery != "" {
		loc.Search = "?" + n.RawQuery
	}
	if n.Fragment != "" {
		loc.Hash = "#" + Fragment(n)
	}
	return loc
}

// Normalize returns a copy of u shaped like a browser's href: lower-case
// scheme and host, default port dropped, empty path replaced by "/", and a
// bare "?" or "#" removed.
func Normalize(u *url.URL) *url.URL {
	n := *u
	n.Scheme = strings.ToLower(n.Scheme)
	n.Host = hostWithoutDefaultPort(n.Scheme, strings.ToLower(n.Host))
	if n.Host != "" && n.Path == "" && n.Opaque == "" {
		n.Path = "/"
		n.RawPath = ""
	}
	n.ForceQuery = false
	if n.Fragment == "" {
		n.RawFragment = ""
	}
	return &n
}

// Href serializes u the way a browser writes an href. It differs from
// u.String only in the fragment, which is encoded by Fragment.
func Href(u *url.URL) string {
	if u.Fragment == "" {
		return u.String()
	}
	v := *u
	v.Fragment, v.RawFragment = "", ""
	return v.String() + "#" + Fragment(u)
}

// Fragment returns the fragment of u without its "#", encoded with the
// browser fragment percent-encode set. A "#" inside the fragment stays
// literal, so "/users?page=2#bio" survives a round trip.
func Fragment(u *url.URL) string {
	if raw := u.RawFragment; raw != "" && !strings.ContainsFunc(raw, escapesInFragment) {
		if f, err := url.PathUnescape(raw); err == nil && f == u.Fragment {
			return raw
		}
	}

	var b strings.Builder
	for i := 0; i < len(u.Fragment); i++ {
		c := u.Fragment[i]
		if c == '%' || c >= 0x80 || escapesInFragment(rune(c)) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func escapesInFragment(r rune) bool {
	switch {
	case r < 0x20, r == 0x7f, r >= 0x80:
		return true
	}
	return strings.ContainsRune(" \"<>`", r)
}

// Origin returns the serialized origin ("scheme://host[:port]") of u.
func Origin(u *url.URL) string {
	scheme := strings.ToLower(u.Scheme)
	host := hostWithoutDefaultPort(scheme, strings.ToLower(u.Host))
	if scheme == "" || host == "" {
		return "null"
	}
	return scheme + "://" + host
}

func hostWithoutDefaultPort(scheme, host string) string {
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		return strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		return strings.TrimSuffix(host, ":443")
	}
	return host
}
