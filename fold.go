package rangers

import (
	"golang.org/x/exp/constraints"
)

// Addable constrains element types that support the + operator.
type Addable interface {
	constraints.Ordered | constraints.Complex
}

// Accumulate drives r to exhaustion and returns init combined with every
// element via +. It is a pure left fold; the source is not modified.
func Accumulate[T Addable](r Ranger[T], init T) T {
	r.Drive(func(p Cursor[T]) bool {
		init = init + p.Get()
		return true
	})
	return init
}

// PartialSum is Accumulate with a write-back: after adding each element to
// the running total, the total is stored into the element's slot through the
// cursor, so the source ends up holding its prefix sums. The ranger's cursors
// must implement Setter (All, Of, AllMap, the Skip variants); a computed
// cursor panics on the assertion.
func PartialSum[T Addable](r Ranger[T], init T) T {
	r.Drive(func(p Cursor[T]) bool {
		init = init + p.Get()
		p.(Setter[T]).Set(init)
		return true
	})
	return init
}

// Fold drives r to exhaustion, threading an accumulator through fn.
func Fold[T, A any](r Ranger[T], init A, fn func(acc A, v T) A) A {
	r.Drive(func(p Cursor[T]) bool {
		init = fn(init, p.Get())
		return true
	})
	return init
}

// Collect drains r into a fresh slice.
func Collect[T any](r Ranger[T]) []T {
	var out []T
	r.Drive(func(p Cursor[T]) bool {
		out = append(out, p.Get())
		return true
	})
	return out
}
