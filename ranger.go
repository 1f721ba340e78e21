// Package rangers implements push-based, resumable sequence combinators.
//
// A Ranger drives a Consumer over a logical sequence: it calls the consumer
// with successive Cursors until the consumer declines or the sequence runs
// out. Control lives inside the chain, so a stack of combinators performs a
// single termination check per element instead of the two a pull-based
// iterator pipeline needs. A ranger that stopped early retains its position
// and can be driven again, with the same or a different consumer, to pick up
// where it left off.
package rangers

// Cursor is a cheap handle to one element of a traversal. A cursor is only
// guaranteed valid for the duration of the consumer call that received it;
// combinators that store one (Unique) rely on the underlying storage staying
// alive.
type Cursor[T any] interface {
	Get() T
}

// Setter is implemented by cursors that address real storage, such as those
// produced by All, Of, AllMap and the Skip variants. Computed cursors
// (Transform, Range, Zip2, Enumerate) do not implement it.
type Setter[T any] interface {
	Set(v T)
}

// Consumer receives successive cursors from a Ranger. Returning false asks
// the ranger to stop; the request propagates through every enclosing
// combinator.
type Consumer[T any] func(c Cursor[T]) bool

// Ranger is the traversal engine. Drive pushes elements at dst starting from
// the retained position and returns true when the sequence is exhausted, or
// false when dst declined. After a false return the ranger may be driven
// again to resume just past the last cursor offered. After a true return the
// ranger is spent; driving it again is safe but yields nothing useful.
//
// Rangers are not safe for concurrent use. Clone returns an independent deep
// copy of the traversal state, which is the intended checkpoint and fan-out
// mechanism: drive the clone on one goroutine and the original on another,
// and they share nothing.
type Ranger[T any] interface {
	Drive(dst Consumer[T]) bool
	Clone() Ranger[T]
}
