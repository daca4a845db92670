package reactive

import (
	"reflect"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubscribeDeliversCurrentValue(t *testing.T) {
	w := NewWritable("a", nil)

	var got []string
	unsub := w.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	w.Set("b")
	w.Set("c")

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSetWithoutEqualsAlwaysNotifies(t *testing.T) {
	w := NewWritable(1, nil)

	calls := 0
	unsub := w.Subscribe(func(int) { calls++ })
	defer unsub()

	w.Set(1)
	w.Set(1)

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithEqualsSuppressesUnchanged(t *testing.T) {
	w := NewWritable(1, nil).WithEquals(func(a, b int) bool { return a == b })

	calls := 0
	unsub := w.Subscribe(func(int) { calls++ })
	defer unsub()

	w.Set(1)
	w.Set(2)
	w.Set(2)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	w := NewWritable(0, nil)

	calls := 0
	unsub := w.Subscribe(func(int) { calls++ })
	unsub()
	unsub()

	w.Set(1)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if w.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", w.SubscriberCount())
	}
}

func TestSubscriptionOrder(t *testing.T) {
	w := NewWritable(0, nil)

	var order []string
	u1 := w.Subscribe(func(int) { order = append(order, "first") })
	u2 := w.Subscribe(func(int) { order = append(order, "second") })
	u3 := w.Subscribe(func(int) { order = append(order, "third") })
	defer u1()
	defer u3()
	u2()

	order = nil
	w.Set(1)

	want := []string{"first", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestLazyStartStop(t *testing.T) {
	starts, stops := 0, 0
	var setter func(int)
	w := NewWritable(0, func(set func(int)) Stop {
		starts++
		setter = set
		return func() { stops++ }
	})

	if w.Active() {
		t.Fatal("value should be inactive before subscription")
	}

	u1 := w.Subscribe(func(int) {})
	u2 := w.Subscribe(func(int) {})
	if starts != 1 {
		t.Errorf("starts = %d, want 1", starts)
	}

	u1()
	if stops != 0 {
		t.Errorf("stops = %d after first unsubscribe, want 0", stops)
	}

	var got int
	u3 := w.Subscribe(func(v int) { got = v })
	setter(7)
	if got != 7 {
		t.Errorf("got = %d, want 7", got)
	}

	u2()
	u3()
	if stops != 1 {
		t.Errorf("stops = %d, want 1", stops)
	}
	if w.Active() {
		t.Error("value should be inactive after last unsubscribe")
	}

	w.Subscribe(func(int) {})()
	if starts != 2 || stops != 2 {
		t.Errorf("starts/stops = %d/%d, want 2/2", starts, stops)
	}
}

func TestConcurrentSubscribeWaitsForStart(t *testing.T) {
	started := make(chan struct{}, 1)
	release := make(chan struct{})
	var starts, stops atomic.Int32
	w := NewWritable(0, func(set func(int)) Stop {
		starts.Add(1)
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return func() { stops.Add(1) }
	})

	first := make(chan Unsubscribe)
	go func() { first <- w.Subscribe(func(int) {}) }()
	<-started

	second := make(chan struct{})
	go func() {
		w.Subscribe(func(int) {})()
		close(second)
	}()

	time.Sleep(10 * time.Millisecond)
	close(release)
	u1 := <-first
	<-second

	if n := starts.Load(); n != 1 {
		t.Errorf("starts = %d, want 1", n)
	}
	if n := stops.Load(); n != 0 {
		t.Errorf("stops = %d while a subscriber remains, want 0", n)
	}
	if !w.Active() {
		t.Error("value should stay active while a subscriber remains")
	}

	u1()
	if starts.Load() != 1 || stops.Load() != 1 {
		t.Errorf("starts/stops = %d/%d, want 1/1", starts.Load(), stops.Load())
	}
}

func TestStartSetterBeforeFirstDelivery(t *testing.T) {
	w := NewWritable("stale", func(set func(string)) Stop {
		set("fresh")
		return nil
	})

	var got []string
	unsub := w.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	if !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Errorf("got %v, want [fresh]", got)
	}
}

func TestGetActivatesBriefly(t *testing.T) {
	starts, stops := 0, 0
	w := NewWritable(0, func(set func(int)) Stop {
		starts++
		set(42)
		return func() { stops++ }
	})

	if got := w.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	if starts != 1 || stops != 1 {
		t.Errorf("starts/stops = %d/%d, want 1/1", starts, stops)
	}
	if w.Peek() != 42 {
		t.Errorf("Peek() = %d, want 42", w.Peek())
	}
}

func TestReentrantSetIsFolded(t *testing.T) {
	w := NewWritable(0, nil)

	unsubA := w.Subscribe(func(v int) {
		if v == 1 {
			w.Set(2)
		}
	})
	defer unsubA()

	var seen []int
	unsubB := w.Subscribe(func(v int) { seen = append(seen, v) })
	defer unsubB()

	w.Set(1)

	want := []int{0, 1, 2}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}

func TestUpdate(t *testing.T) {
	w := NewWritable(10, nil)
	w.Update(func(n int) int { return n + 5 })
	if w.Peek() != 15 {
		t.Errorf("Peek() = %d, want 15", w.Peek())
	}
}

func TestNilSubscriber(t *testing.T) {
	w := NewWritable(0, nil)
	unsub := w.Subscribe(nil)
	unsub()
	if w.SubscriberCount() != 0 {
		t.Error("nil subscriber should not be registered")
	}
}

func TestReadOnly(t *testing.T) {
	var setter func(string)
	r := NewReadable("x", func(set func(string)) Stop {
		setter = set
		return nil
	})

	var got string
	unsub := r.Subscribe(func(v string) { got = v })
	setter("y")
	if got != "y" {
		t.Errorf("got %q, want %q", got, "y")
	}
	if r.SubscriberCount() != 1 || !r.Active() {
		t.Error("ReadOnly should report one active subscriber")
	}
	unsub()
	if r.Peek() != "y" {
		t.Errorf("Peek() = %q, want %q", r.Peek(), "y")
	}
}
