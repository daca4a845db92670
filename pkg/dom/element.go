package dom

import "strings"

// Attrs holds element attributes.
type Attrs map[string]string

// Element is an in-memory element node.
type Element struct {
	tag      string
	attrs    Attrs
	parent   *Element
	children []*Element
	events   listenerSet
}

// El creates an element with the given attributes and children.
// Children are re-parented onto the new element.
func El(tag string, attrs Attrs, children ...*Element) *Element {
	e := &Element{
		tag:   strings.ToLower(tag),
		attrs: Attrs{},
	}
	for k, v := range attrs {
		e.attrs[k] = v
	}
	e.Append(children...)
	return e
}

// A creates an anchor element pointing at href.
func A(href string, attrs Attrs, children ...*Element) *Element {
	merged := Attrs{"href": href}
	for k, v := range attrs {
		merged[k] = v
	}
	return El("a", merged, children...)
}

// Append adds children to e, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = e
		e.children = append(e.children, c)
	}
}

func (e *Element) remove(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Parent implements Node.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// TagName implements Node.
func (e *Element) TagName() string {
	return e.tag
}

// Attribute implements Node.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
}

// RemoveAttribute deletes an attribute.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// Children returns the element's children.
func (e *Element) Children() []*Element {
	return e.children
}

// AddEventListener implements EventTarget.
func (e *Element) AddEventListener(eventType string, fn Listener) *Registration {
	return e.events.add(eventType, fn)
}

// ListenerCount implements EventTarget.
func (e *Element) ListenerCount(eventType string) int {
	return e.events.count(eventType)
}

// Dispatch delivers ev to the target's listeners and then to each
// ancestor's, stopping early when propagation is stopped. It reports
// whether the default action was left alone.
func Dispatch(target *Element, ev *Event) bool {
	if ev.Target == nil {
		ev.Target = target
	}
	for el := target; el != nil; el = el.parent {
		el.events.dispatch(ev)
		if ev.propagationStopped {
			break
		}
	}
	return !ev.DefaultPrevented()
}

// Click dispatches a bubbling click event on target with the given
// modifier keys held.
func Click(target *Element, mods Modifiers) *Event {
	ev := &Event{Type: EventClick, Target: target, Modifiers: mods}
	Dispatch(target, ev)
	return ev
}
