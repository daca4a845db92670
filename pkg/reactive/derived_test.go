package reactive

import (
	"reflect"
	"testing"
)

func TestDeriveMapsValues(t *testing.T) {
	src := NewWritable(2, nil)
	doubled := Derive[int, int](src, func(n int) int { return n * 2 })

	var got []int
	unsub := doubled.Subscribe(func(v int) { got = append(got, v) })
	defer unsub()

	src.Set(5)

	want := []int{4, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDeriveIsLazy(t *testing.T) {
	starts, stops := 0, 0
	src := NewReadable(1, func(set func(int)) Stop {
		starts++
		return func() { stops++ }
	})
	a := Derive[int, int](src, func(n int) int { return n + 1 })
	b := Derive[int, int](a, func(n int) int { return n * 10 })

	if src.Active() {
		t.Fatal("source active before any subscription")
	}

	unsub := b.Subscribe(func(int) {})
	if starts != 1 || !src.Active() || !a.Active() {
		t.Errorf("chain not activated: starts=%d", starts)
	}

	unsub()
	if stops != 1 || src.Active() || a.Active() {
		t.Errorf("chain not released: stops=%d", stops)
	}

	if got := b.Get(); got != 20 {
		t.Errorf("Get() = %d, want 20", got)
	}
}

func TestDeriveSetCanSkip(t *testing.T) {
	src := NewWritable(0, nil)
	evens := DeriveSet[int, int](src, -1, func(n int, set func(int)) {
		if n%2 == 0 {
			set(n)
		}
	})

	var got []int
	unsub := evens.Subscribe(func(v int) { got = append(got, v) })
	defer unsub()

	src.Set(1)
	src.Set(2)
	src.Set(3)

	want := []int{0, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if evens.Peek() != 2 {
		t.Errorf("Peek() = %d, want 2", evens.Peek())
	}
}

func TestDeriveSetInitialWhenNeverSet(t *testing.T) {
	src := NewWritable(1, nil)
	evens := DeriveSet[int, int](src, -1, func(n int, set func(int)) {
		if n%2 == 0 {
			set(n)
		}
	})

	if got := evens.Get(); got != -1 {
		t.Errorf("Get() = %d, want -1", got)
	}
}

func TestDeriveSet3(t *testing.T) {
	a := NewWritable("a", nil)
	b := NewWritable(1, nil)
	c := NewWritable(true, nil)

	runs := 0
	combined := DeriveSet3[string, int, bool, string](a, b, c, "", func(x string, y int, z bool, set func(string)) {
		runs++
		if z {
			set(x + string(rune('0'+y)))
		}
	})

	var got []string
	unsub := combined.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	if runs != 1 {
		t.Errorf("runs after subscribe = %d, want 1", runs)
	}

	b.Set(2)
	c.Set(false)
	a.Set("z")
	c.Set(true)

	want := []string{"a1", "a2", "z2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if runs != 5 {
		t.Errorf("runs = %d, want 5", runs)
	}
}

func TestDeriveSet3ReleasesInputs(t *testing.T) {
	a := NewWritable(0, nil)
	b := NewWritable(0, nil)
	c := NewWritable(0, nil)

	sum := DeriveSet3[int, int, int, int](a, b, c, 0, func(x, y, z int, set func(int)) {
		set(x + y + z)
	})

	unsub := sum.Subscribe(func(int) {})
	for i, w := range []*Writable[int]{a, b, c} {
		if w.SubscriberCount() != 1 {
			t.Errorf("input %d SubscriberCount() = %d, want 1", i, w.SubscriberCount())
		}
	}

	unsub()
	for i, w := range []*Writable[int]{a, b, c} {
		if w.SubscriberCount() != 0 {
			t.Errorf("input %d SubscriberCount() = %d, want 0", i, w.SubscriberCount())
		}
	}
}
