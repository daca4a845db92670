package router

import (
	"github.com/vango-dev/navkit/pkg/dom"
	"github.com/vango-dev/navkit/pkg/link"
)

// Link creates an anchor that an attached link.Interceptor routes
// client-side.
func Link(href string, children ...*dom.Element) *dom.Element {
	return dom.A(href, nil, children...)
}

// NativeLink creates an anchor the interceptor ignores, so the host performs
// a full navigation.
func NativeLink(href string, children ...*dom.Element) *dom.Element {
	return dom.A(href, dom.Attrs{link.DefaultIgnoreAttribute: "true"}, children...)
}

// NewTabLink creates an anchor that opens in a new browsing context.
func NewTabLink(href string, children ...*dom.Element) *dom.Element {
	return dom.A(href, dom.Attrs{"target": "_blank", "rel": "noopener"}, children...)
}
