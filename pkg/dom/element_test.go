package dom

import (
	"reflect"
	"testing"
)

func TestAppendReparents(t *testing.T) {
	child := El("span", nil)
	first := El("div", nil, child)
	second := El("p", nil)

	second.Append(child)

	if len(first.Children()) != 0 {
		t.Errorf("first has %d children, want 0", len(first.Children()))
	}
	if child.Parent() != Node(second) {
		t.Error("child not re-parented")
	}
	if El("div", nil).Parent() != nil {
		t.Error("root Parent() should be an untyped nil")
	}
}

func TestAttributes(t *testing.T) {
	a := A("/x", Attrs{"target": "_blank"})
	if v, ok := a.Attribute("target"); !ok || v != "_blank" {
		t.Errorf("target = %q, %v", v, ok)
	}
	a.SetAttribute("target", "_self")
	if v, _ := a.Attribute("target"); v != "_self" {
		t.Errorf("target = %q, want _self", v)
	}
	a.RemoveAttribute("target")
	if _, ok := a.Attribute("target"); ok {
		t.Error("target should be removed")
	}
}

func TestClickBubbles(t *testing.T) {
	leaf := El("span", nil)
	mid := El("div", nil, leaf)
	root := El("main", nil, mid)

	var order []string
	root.AddEventListener(EventClick, func(*Event) { order = append(order, "root") })
	mid.AddEventListener(EventClick, func(*Event) { order = append(order, "mid") })
	leaf.AddEventListener(EventClick, func(ev *Event) {
		order = append(order, "leaf")
		if ev.Target != Node(leaf) {
			t.Error("Target should be the clicked element")
		}
	})

	ev := Click(leaf, ModShift)
	if !reflect.DeepEqual(order, []string{"leaf", "mid", "root"}) {
		t.Errorf("order = %v", order)
	}
	if !ev.Modifiers.Has(ModShift) || ev.Modifiers.Has(ModCtrl) {
		t.Errorf("Modifiers = %b", ev.Modifiers)
	}
}

func TestStopPropagationAndPreventDefault(t *testing.T) {
	leaf := El("span", nil)
	root := El("div", nil, leaf)

	rootCalled := false
	root.AddEventListener(EventClick, func(*Event) { rootCalled = true })
	leaf.AddEventListener(EventClick, func(ev *Event) {
		ev.PreventDefault()
		ev.StopPropagation()
	})

	if Dispatch(leaf, &Event{Type: EventClick}) {
		t.Error("Dispatch should report the default as prevented")
	}
	if rootCalled {
		t.Error("propagation should have stopped")
	}
}

func TestRegistrationRemove(t *testing.T) {
	el := El("div", nil)

	calls := 0
	reg := el.AddEventListener(EventClick, func(*Event) { calls++ })
	other := el.AddEventListener(EventClick, func(*Event) {})
	if el.ListenerCount(EventClick) != 2 {
		t.Fatalf("ListenerCount() = %d, want 2", el.ListenerCount(EventClick))
	}

	reg.Remove()
	reg.Remove()
	if el.ListenerCount(EventClick) != 1 {
		t.Errorf("ListenerCount() = %d, want 1", el.ListenerCount(EventClick))
	}

	Click(el, 0)
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}

	other.Remove()
	var nilReg *Registration
	nilReg.Remove()
}

func TestModifiers(t *testing.T) {
	var m Modifiers
	if m.Any() {
		t.Error("zero Modifiers should report none")
	}
	m = ModMeta | ModAlt
	if !m.Any() || !m.Has(ModMeta) || !m.Has(ModAlt) || m.Has(ModShift) {
		t.Errorf("Modifiers = %b", m)
	}
}
