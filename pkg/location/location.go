package location

import "strings"

// Location is a decomposed URL-like value.
//
// Path always begins with "/". Query is empty or begins with "?". Hash is
// empty or begins with "#".
type Location struct {
	Path  string `json:"path"`
	Query string `json:"query"`
	Hash  string `json:"hash"`
}

// Root is the location of "/" with no query or hash.
var Root = Location{Path: "/"}

// String reassembles the location as path+query+hash.
func (l Location) String() string {
	return l.Path + l.Query + l.Hash
}

// Parse splits a path-like fragment into a Location.
//
// The path is the text before the first "?" or "#" when it starts with "/";
// anything else yields "/". The query is the text after the first "?" that
// precedes the first "#"; a "?" inside the hash stays in the hash. The hash
// is everything after the first "#". Empty query or hash text yields an
// empty field rather than a bare "?" or "#".
//
// Parse(l.String()) == l for every l returned by Parse.
func Parse(fragment string) Location {
	rest, hash, hasHash := strings.Cut(fragment, "#")
	pathPart, query, _ := strings.Cut(rest, "?")

	loc := Location{Path: "/"}
	if strings.HasPrefix(pathPart, "/") {
		loc.Path = pathPart
	}
	if query != "" {
		loc.Query = "?" + query
	}
	if hasHash && hash != "" {
		loc.Hash = "#" + hash
	}
	return loc
}

// parseHashFragment turns a document hash ("#/a?b#c", "#a", "") into a
// Location, treating the fragment as a pseudo-URL rooted at "/".
func parseHashFragment(hash string) Location {
	fragment := strings.TrimPrefix(hash, "#")
	if !strings.HasPrefix(fragment, "/") {
		fragment = "/" + fragment
	}
	return Parse(fragment)
}
