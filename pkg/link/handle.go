package link

import "github.com/vango-dev/navkit/pkg/dom"

// Handle is an attached interceptor.
type Handle struct {
	reg *dom.Registration
}

// Attach registers the interceptor's click listener on target. Clicks whose
// href cannot be resolved are logged and left to the host.
func (i *Interceptor) Attach(target dom.EventTarget) *Handle {
	reg := target.AddEventListener(dom.EventClick, func(ev *dom.Event) {
		if _, err := i.HandleClick(ev); err != nil {
			i.logger.Warn("link click not intercepted", "error", err)
		}
	})
	return &Handle{reg: reg}
}

// Detach removes the click listener. It is safe to call more than once.
func (h *Handle) Detach() {
	if h == nil {
		return
	}
	h.reg.Remove()
}
