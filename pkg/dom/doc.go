// Package dom models the small part of a browser document that navigation
// code depends on: a tree of nodes with attributes, event targets, click
// events with modifier keys, and a window exposing the document location.
//
// The interfaces are host-agnostic. A WASM bridge, a server-driven session
// or the in-memory MemoryWindow can all back them.
package dom
