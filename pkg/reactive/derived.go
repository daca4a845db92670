package reactive

import "sync"

// Derive returns a value that maps every value of src through fn.
func Derive[S, T any](src Readable[S], fn func(S) T) *ReadOnly[T] {
	var zero T
	return DeriveSet(src, zero, func(v S, set func(T)) {
		set(fn(v))
	})
}

// DeriveSet returns a value driven by src where fn decides whether (and
// what) to publish. Until fn first calls set, the value is initial.
func DeriveSet[S, T any](src Readable[S], initial T, fn func(S, func(T))) *ReadOnly[T] {
	return NewReadable(initial, func(set func(T)) Stop {
		unsub := src.Subscribe(func(v S) {
			fn(v, set)
		})
		return Stop(unsub)
	})
}

// DeriveSet3 combines three inputs. fn runs once all inputs have delivered
// their initial value and again whenever any of them changes.
func DeriveSet3[A, B, C, T any](a Readable[A], b Readable[B], c Readable[C], initial T, fn func(A, B, C, func(T))) *ReadOnly[T] {
	return NewReadable(initial, func(set func(T)) Stop {
		var (
			mu    sync.Mutex
			va    A
			vb    B
			vc    C
			ready bool
		)

		recompute := func() {
			mu.Lock()
			if !ready {
				mu.Unlock()
				return
			}
			xa, xb, xc := va, vb, vc
			mu.Unlock()
			fn(xa, xb, xc, set)
		}

		unsubA := a.Subscribe(func(v A) {
			mu.Lock()
			va = v
			mu.Unlock()
			recompute()
		})
		unsubB := b.Subscribe(func(v B) {
			mu.Lock()
			vb = v
			mu.Unlock()
			recompute()
		})
		unsubC := c.Subscribe(func(v C) {
			mu.Lock()
			vc = v
			mu.Unlock()
			recompute()
		})

		mu.Lock()
		ready = true
		mu.Unlock()
		recompute()

		return func() {
			unsubA()
			unsubB()
			unsubC()
		}
	})
}
