// Package link turns ordinary anchor clicks into client-side navigations.
//
// An Interceptor is attached to a container element. For every click inside
// it, the nearest enclosing <a href> is inspected, and the click is handed to
// the Router (and the browser's own navigation suppressed) only when all of
// the following hold:
//
//   - the anchor is not marked with the ignore attribute
//     (data-handle-ignore="" or data-handle-ignore="true")
//   - the anchor has no target, or target="_self"
//   - no modifier key (meta, ctrl, alt, shift) is held
//   - the resolved href has the document's origin
//
// A link to the current URL is sent to Router.Replace, anything else to
// Router.Push:
//
//	ic := link.New(win, router)
//	h := ic.Attach(appRoot)
//	defer h.Detach()
//
// The interceptor keeps no state between clicks.
package link
