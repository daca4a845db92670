package dom

import "strings"

// MaxAncestorDepth bounds upward traversals in Closest.
const MaxAncestorDepth = 512

// Node is a read-only view of a document node.
type Node interface {
	// Parent returns the enclosing node, or nil at the root.
	Parent() Node

	// TagName returns the lower-case element name ("a", "div"). Non-element
	// nodes return "".
	TagName() string

	// Attribute returns an attribute value and whether it is present.
	Attribute(name string) (string, bool)
}

// Closest returns n or its nearest ancestor for which match returns true.
// The walk stops after MaxAncestorDepth steps and returns nil.
func Closest(n Node, match func(Node) bool) Node {
	for depth := 0; n != nil && depth <= MaxAncestorDepth; depth++ {
		if match(n) {
			return n
		}
		n = n.Parent()
	}
	return nil
}

// IsAnchorWithHref matches <a> elements that carry an href attribute.
func IsAnchorWithHref(n Node) bool {
	if !strings.EqualFold(n.TagName(), "a") {
		return false
	}
	_, ok := n.Attribute("href")
	return ok
}
