package rangers

// derefFun is a lazy cursor: it holds the inner cursor and applies f on every
// Get rather than precomputing the value once.
type derefFun[T, U any] struct {
	p Cursor[T]
	f func(T) U
}

func (c derefFun[T, U]) Get() U { return c.f(c.p.Get()) }

type transformRanger[T, U any] struct {
	inner Ranger[T]
	f     func(T) U
}

// Transform returns a ranger whose cursors yield f applied to the elements of
// r. The cursor evaluates f on each Get, so a downstream combinator that
// dereferences the same cursor twice (Unique compares its stored previous
// cursor on every step) runs f twice; f must tolerate repeated invocation on
// the same position.
func Transform[T, U any](f func(T) U, r Ranger[T]) Ranger[U] {
	return &transformRanger[T, U]{inner: r, f: f}
}

func (t *transformRanger[T, U]) Drive(dst Consumer[U]) bool {
	return t.inner.Drive(func(p Cursor[T]) bool {
		return dst(derefFun[T, U]{p, t.f})
	})
}

func (t *transformRanger[T, U]) Clone() Ranger[U] {
	return &transformRanger[T, U]{inner: t.inner.Clone(), f: t.f}
}
